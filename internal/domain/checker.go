package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/cmin/internal/adapter"
	m "github.com/mouse-blink/cmin/internal/model"
)

// Checker compiles a fixture before and after minification, runs both
// programs and compares their exit status.
type Checker interface {
	CheckFixture(ctx context.Context, source m.Source, opts Options) (m.CheckReport, error)
}

type checker struct {
	fsAdapter adapter.SourceFSAdapter
	compiler  adapter.CompilerAdapter
	minifier  Minifier
}

// NewChecker constructs a Checker backed by the provided adapters.
func NewChecker(fsAdapter adapter.SourceFSAdapter, compiler adapter.CompilerAdapter, minifier Minifier) Checker {
	return &checker{
		fsAdapter: fsAdapter,
		compiler:  compiler,
		minifier:  minifier,
	}
}

func (ck *checker) CheckFixture(ctx context.Context, source m.Source, opts Options) (m.CheckReport, error) {
	report := m.CheckReport{Fixture: source.Origin}

	result, err := ck.minifier.Minify(ctx, source.Content, opts)
	if err != nil {
		report.Status = m.CheckFailed
		report.Detail = err.Error()

		return report, nil
	}

	tmpDir, err := ck.fsAdapter.CreateTempDir("cmin-check-*")
	if err != nil {
		return m.CheckReport{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer ck.cleanupTempDir(tmpDir)

	base := strings.TrimSuffix(filepath.Base(string(source.Origin)), filepath.Ext(string(source.Origin)))

	originalExit, detail, ok, err := ck.build(ctx, tmpDir, base, source.Content)
	if err != nil {
		return m.CheckReport{}, err
	}

	if !ok {
		report.Status = m.CheckSkipped
		report.Detail = "original does not compile: " + detail

		return report, nil
	}

	minifiedExit, detail, ok, err := ck.build(ctx, tmpDir, base+"_min", result.Code)
	if err != nil {
		return m.CheckReport{}, err
	}

	report.OriginalExit = originalExit
	report.MinifiedExit = minifiedExit

	switch {
	case !ok:
		report.Status = m.CheckFailed
		report.Detail = "minified code does not compile: " + detail
	case originalExit != minifiedExit:
		report.Status = m.CheckFailed
		report.Detail = fmt.Sprintf("exit status changed from %d to %d", originalExit, minifiedExit)
	default:
		report.Status = m.CheckPassed
	}

	return report, nil
}

// build writes code into dir, compiles and runs it. ok is false when the
// compiler rejected the code, in which case detail holds its output.
func (ck *checker) build(ctx context.Context, dir m.Path, name string, code []byte) (exit int, detail string, ok bool, err error) {
	sourcePath := ck.fsAdapter.JoinPath(string(dir), name+".c")
	binaryPath := ck.fsAdapter.JoinPath(string(dir), name)

	if err := ck.fsAdapter.WriteFile(sourcePath, code, 0o600); err != nil {
		return 0, "", false, fmt.Errorf("failed to write %s: %w", sourcePath, err)
	}

	if out, err := ck.compiler.Compile(ctx, sourcePath, binaryPath); err != nil {
		if ctx.Err() != nil {
			return 0, "", false, ctx.Err()
		}

		return 0, strings.TrimSpace(out), false, nil
	}

	exit, err = ck.compiler.Run(ctx, binaryPath)
	if err != nil {
		return 0, "", false, err
	}

	return exit, "", true, nil
}

// cleanupTempDir removes the temporary directory, ignoring cleanup errors.
func (ck *checker) cleanupTempDir(tmpDir m.Path) {
	if err := ck.fsAdapter.RemoveAll(tmpDir); err != nil {
		// A leftover scratch dir does not change the verdict.
		_ = err
	}
}
