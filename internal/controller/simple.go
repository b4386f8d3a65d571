package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cmin/internal/model"
)

// SimpleUI implements UI on top of a cobra Command's writers.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. When styled is true, check verdicts are
// colored with lipgloss.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// WriteCode writes code to standard output and terminates it with a newline.
func (s *SimpleUI) WriteCode(code []byte) error {
	out := s.cmd.OutOrStdout()

	if _, err := out.Write(code); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out)

	return err
}

// DisplayStats renders a table of size and rename counts per file.
func (s *SimpleUI) DisplayStats(results []m.FileResult) error {
	if len(results) == 0 {
		s.errorf("no files minified\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Bytes In", "Bytes Out", "Saved", "Comments", "Renamed", "Names"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var in, out int

	for _, result := range results {
		st := result.Result.Stats
		in += st.InputBytes
		out += st.OutputBytes

		table.Append([]string{
			string(result.Source.Origin),
			strconv.Itoa(st.InputBytes),
			strconv.Itoa(st.OutputBytes),
			savedPercent(st.InputBytes, st.OutputBytes),
			strconv.Itoa(st.CommentsRemoved),
			strconv.Itoa(st.IdentifiersRenamed),
			strconv.Itoa(st.NamesGenerated),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		strconv.Itoa(in),
		strconv.Itoa(out),
		savedPercent(in, out),
		"", "", "",
	})

	table.Render()
	s.errorf("\n%s", tableBuffer.String())

	return nil
}

// DisplayWritten reports where a minified file was written.
func (s *SimpleUI) DisplayWritten(result m.FileResult) {
	s.errorf("%s -> %s (%s saved)\n", result.Source.Origin, result.Output,
		savedPercent(result.Result.Stats.InputBytes, result.Result.Stats.OutputBytes))
}

// DisplayCheckReports renders the equivalence check verdicts and a summary.
func (s *SimpleUI) DisplayCheckReports(reports []m.CheckReport) error {
	if len(reports) == 0 {
		s.printf("No fixtures found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Fixture", "Status", "Original", "Minified"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	passed := 0

	for _, report := range reports {
		if report.Status == m.CheckPassed {
			passed++
		}

		table.Append([]string{
			string(report.Fixture),
			s.status(report.Status),
			strconv.Itoa(report.OriginalExit),
			strconv.Itoa(report.MinifiedExit),
		})
	}

	table.SetFooter([]string{"Summary", fmt.Sprintf("%d/%d passed", passed, len(reports)), "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, report := range reports {
		if report.Status != m.CheckPassed && report.Detail != "" {
			s.printf("\n%s: %s\n", report.Fixture, report.Detail)
		}
	}

	return nil
}

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (s *SimpleUI) status(status m.CheckStatus) string {
	label := string(status)
	if !s.styled {
		return label
	}

	switch status {
	case m.CheckPassed:
		return passedStyle.Render(label)
	case m.CheckFailed:
		return failedStyle.Render(label)
	default:
		return skippedStyle.Render(label)
	}
}

func savedPercent(in, out int) string {
	if in == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(in-out)/float64(in))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
