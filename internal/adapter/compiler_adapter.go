package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	m "github.com/mouse-blink/cmin/internal/model"
)

// CompilerAdapter builds and executes C programs for the equivalence check.
type CompilerAdapter interface {
	// Compile builds source into binary and returns the compiler's combined output.
	Compile(ctx context.Context, source, binary m.Path) (string, error)
	// Run executes binary and returns its exit status. A non-zero status is
	// not an error; failing to start the process is.
	Run(ctx context.Context, binary m.Path) (int, error)
}

// LocalCompilerAdapter shells out to a C compiler found on PATH.
type LocalCompilerAdapter struct {
	cc     string
	cflags []string
}

// NewLocalCompilerAdapter constructs a LocalCompilerAdapter for the given
// compiler command and extra flags.
func NewLocalCompilerAdapter(cc string, cflags ...string) *LocalCompilerAdapter {
	if cc == "" {
		cc = "cc"
	}

	return &LocalCompilerAdapter{cc: cc, cflags: cflags}
}

// Available reports whether the configured compiler can be found.
func (a *LocalCompilerAdapter) Available() bool {
	_, err := exec.LookPath(a.cc)
	return err == nil
}

// Compile runs `cc [cflags] -o binary source`.
func (a *LocalCompilerAdapter) Compile(ctx context.Context, source, binary m.Path) (string, error) {
	args := make([]string, 0, len(a.cflags)+3)
	args = append(args, a.cflags...)
	args = append(args, "-o", string(binary), string(source))

	// #nosec G204 - the compiler is chosen by the user running the check
	cmd := exec.CommandContext(ctx, a.cc, args...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %w", a.cc, source, err)
	}

	return string(out), nil
}

// Run executes binary without arguments.
func (a *LocalCompilerAdapter) Run(ctx context.Context, binary m.Path) (int, error) {
	// #nosec G204 - binary was produced by Compile
	cmd := exec.CommandContext(ctx, string(binary))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("failed to run %s: %w", binary, err)
}
