package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/cmin/internal/adapter"
	"github.com/mouse-blink/cmin/internal/controller"
	m "github.com/mouse-blink/cmin/internal/model"
)

// ErrNoInput is returned when Minify is called without paths.
var ErrNoInput = errors.New("no input file")

// ErrOutputRequired is returned when several inputs are given without an
// output directory.
var ErrOutputRequired = errors.New("several inputs need an output directory")

// ErrCheckFailed is returned when at least one fixture changed behaviour.
var ErrCheckFailed = errors.New("equivalence check failed")

// MinifyArgs contains the arguments for minifying files.
type MinifyArgs struct {
	Paths     []m.Path
	Output    m.Path // file or directory; stdout when empty
	Options   Options
	Threads   int
	ShowStats bool
}

// CheckArgs contains the arguments for the equivalence check.
type CheckArgs struct {
	Paths   []m.Path
	Options Options
	Threads int
}

// Workflow defines the file-level use cases exposed by the CLI.
type Workflow interface {
	Minify(ctx context.Context, args MinifyArgs) error
	Check(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	minifier  Minifier
	checker   Checker
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	minifier Minifier,
	checker Checker,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		minifier:  minifier,
		checker:   checker,
	}
}

// Minify minifies one file to stdout or Output, or several files into the
// Output directory using up to Threads workers.
func (w *workflow) Minify(ctx context.Context, args MinifyArgs) error {
	switch len(args.Paths) {
	case 0:
		return ErrNoInput
	case 1:
		return w.minifyOne(ctx, args)
	default:
		if args.Output == "" {
			return ErrOutputRequired
		}

		return w.minifyMany(ctx, args)
	}
}

func (w *workflow) minifyOne(ctx context.Context, args MinifyArgs) error {
	source, err := w.readSource(args.Paths[0])
	if err != nil {
		return err
	}

	output := args.Output
	if output != "" {
		if info, err := w.fsAdapter.FileInfo(output); err == nil && info.IsDir() {
			output = w.outputPath(output, source.Origin)
		}
	}

	fr, err := w.minifySource(ctx, source, output, args.Options)
	if err != nil {
		return err
	}

	if output == "" {
		if err := w.ui.WriteCode(fr.Result.Code); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		w.ui.DisplayWritten(fr)
	}

	if args.ShowStats {
		return w.ui.DisplayStats([]m.FileResult{fr})
	}

	return nil
}

func (w *workflow) minifyMany(ctx context.Context, args MinifyArgs) error {
	sources := make([]m.Source, 0, len(args.Paths))

	for _, path := range args.Paths {
		source, err := w.readSource(path)
		if err != nil {
			return err
		}

		sources = append(sources, source)
	}

	results := make([]m.FileResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads(args.Threads))

	for i, source := range sources {
		g.Go(func() error {
			fr, err := w.minifySource(gctx, source, w.outputPath(args.Output, source.Origin), args.Options)
			if err != nil {
				return err
			}

			results[i] = fr

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, fr := range results {
		w.ui.DisplayWritten(fr)
	}

	if args.ShowStats {
		return w.ui.DisplayStats(results)
	}

	return nil
}

// minifySource runs the pipeline and writes to output when it is set.
func (w *workflow) minifySource(ctx context.Context, source m.Source, output m.Path, opts Options) (m.FileResult, error) {
	result, err := w.minifier.Minify(ctx, source.Content, opts)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("failed to minify %s: %w", source.Origin, err)
	}

	fr := m.FileResult{Source: source, Output: output, Result: result}

	if output != "" {
		code := append(slices.Clip(result.Code), '\n')
		if err := w.fsAdapter.WriteFile(output, code, 0o644); err != nil {
			return m.FileResult{}, fmt.Errorf("failed to write %s: %w", output, err)
		}
	}

	return fr, nil
}

// Check runs the equivalence check over every fixture found under Paths.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	sources, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return err
	}

	reports := make([]m.CheckReport, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads(args.Threads))

	for i, source := range sources {
		g.Go(func() error {
			report, err := w.checker.CheckFixture(gctx, source, args.Options)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", source.Origin, err)
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.ui.DisplayCheckReports(reports); err != nil {
		return err
	}

	for _, report := range reports {
		if report.Status == m.CheckFailed {
			return ErrCheckFailed
		}
	}

	return nil
}

func (w *workflow) readSource(path m.Path) (m.Source, error) {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.Source{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return m.Source{Origin: path, Content: content}, nil
}

// outputPath places the minified copy of origin inside dir as name_min.c.
func (w *workflow) outputPath(dir, origin m.Path) m.Path {
	base := filepath.Base(string(origin))
	ext := filepath.Ext(base)

	return w.fsAdapter.JoinPath(string(dir), strings.TrimSuffix(base, ext)+"_min"+ext)
}

func threads(n int) int {
	if n <= 0 {
		return 1
	}

	return n
}
