package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cmin/internal/domain"
	m "github.com/mouse-blink/cmin/internal/model"
)

const defaultFixtureDir = "./tests"

var checkCCFlag string
var checkParallelFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check that minified fixtures behave like the originals",
		Long: `Check compiles every .c file in dir (default ` + defaultFixtureDir + `, use dir/... to
recurse) as written and after minification, runs both programs and compares
their exit status. Fixtures whose original does not compile are skipped.

The command exits with status 1 when any fixture fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("cc") {
				cfg.Check.CC = checkCCFlag
			}

			if cmd.Flags().Changed("parallel") {
				cfg.Check.Parallel = checkParallelFlag
			}

			dir := defaultFixtureDir
			if len(args) == 1 {
				dir = args[0]
			}

			return newWorkflow(cmd, cfg).Check(cmd.Context(), domain.CheckArgs{
				Paths:   []m.Path{m.Path(dir)},
				Options: domain.OptionsFromConfig(cfg.Minify),
				Threads: cfg.Check.Parallel,
			})
		},
	}
	cmd.Flags().StringVar(&checkCCFlag, "cc", "cc", "C compiler used to build fixtures")
	cmd.Flags().IntVarP(&checkParallelFlag, "parallel", "p", 1, "number of fixtures checked in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
