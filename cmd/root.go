// Package cmd provides the root command and CLI setup for cmin.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cmin/internal/adapter"
	"github.com/mouse-blink/cmin/internal/controller"
	"github.com/mouse-blink/cmin/internal/domain"
	m "github.com/mouse-blink/cmin/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var cFileAdapter adapter.CFileAdapter
var configAdapter adapter.ConfigAdapter

// newWorkflow builds the workflow for one invocation. The compiler used by
// `cmin check` comes from the resolved configuration, so wiring happens
// after flags are parsed.
var newWorkflow func(cmd *cobra.Command, cfg m.Config) domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	cFileAdapter = adapter.NewLocalCFileAdapter()
	configAdapter = adapter.NewTOMLConfigAdapter()
	newWorkflow = buildWorkflow
}

func buildWorkflow(cmd *cobra.Command, cfg m.Config) domain.Workflow {
	ui := controller.NewSimpleUI(cmd, controller.IsTTY(os.Stdout))
	minifier := domain.NewMinifier(cFileAdapter)
	compiler := adapter.NewLocalCompilerAdapter(cfg.Check.CC, cfg.Check.CFlags...)

	return domain.NewWorkflow(
		fsAdapter,
		ui,
		minifier,
		domain.NewChecker(fsAdapter, compiler, minifier),
	)
}

var configFlag string
var noRenameFlag bool
var keepCommentsFlag bool
var keepWhitespaceFlag bool
var reserveFlags []string
var maxDepthFlag int
var statsFlag bool
var outputFlag string
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmin <file.c>...",
		Short: "C source minifier",
		Long: `cmin shrinks C source code without changing what it does: comments are
removed, local and file-static names are shortened scope by scope, and
whitespace the compiler does not need is dropped.

The result is written to standard output, or with --output to a file. Several
inputs need --output to name a directory; each file is written there as
name_min.c.

Settings are read from .cmin.toml in the current directory or above it;
command-line flags take precedence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			return newWorkflow(cmd, cfg).Minify(cmd.Context(), domain.MinifyArgs{
				Paths:     parsePaths(args),
				Output:    m.Path(outputFlag),
				Options:   domain.OptionsFromConfig(cfg.Minify),
				Threads:   parallelFlag,
				ShowStats: statsFlag,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "path to a TOML config file (default: nearest "+adapter.ConfigFileName+")")
	pf.BoolVar(&noRenameFlag, "no-rename", false, "keep identifier names")
	pf.BoolVar(&keepCommentsFlag, "keep-comments", false, "keep comments")
	pf.BoolVar(&keepWhitespaceFlag, "keep-whitespace", false, "keep whitespace as written")
	pf.StringArrayVar(&reserveFlags, "reserve", nil, "name that must never be generated (can be repeated)")
	pf.IntVar(&maxDepthFlag, "max-depth", m.DefaultMaxDepth, "maximum syntax tree nesting before giving up")

	cmd.Flags().BoolVar(&statsFlag, "stats", false, "print a size and rename summary to stderr")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file, or directory for several inputs")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files minified in parallel")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig(cmd *cobra.Command) (m.Config, error) {
	cfg := m.DefaultConfig()

	path := m.Path(configFlag)
	if path == "" {
		found, ok, err := configAdapter.Find(".")
		if err != nil {
			return m.Config{}, err
		}

		if ok {
			path = found
		}
	}

	if path != "" {
		loaded, err := configAdapter.Load(path)
		if err != nil {
			return m.Config{}, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("no-rename") {
		cfg.Minify.Rename = !noRenameFlag
	}

	if flags.Changed("keep-comments") {
		cfg.Minify.StripComments = !keepCommentsFlag
	}

	if flags.Changed("keep-whitespace") {
		cfg.Minify.CompactWhitespace = !keepWhitespaceFlag
	}

	if flags.Changed("max-depth") {
		cfg.Minify.MaxDepth = maxDepthFlag
	}

	if len(reserveFlags) > 0 {
		cfg.Minify.Reserved = append(append([]string{}, cfg.Minify.Reserved...), reserveFlags...)
	}

	return cfg, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
