// Package adapter contains the infrastructure adapters used by the cmin CLI.
package adapter

import (
	"cmp"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/cmin/internal/model"
)

const cFileExt = ".c"

// minifiedSuffix marks files produced by cmin itself so that re-running over a
// directory does not pick them up as inputs.
const minifiedSuffix = "_min.c"

// recursiveSuffix asks Get to descend into subdirectories, as in `./tests/...`.
const recursiveSuffix = "/..."

// SourceFSAdapter is the domain's only door to the disk.
//
//nolint:interfacebloat // inputs, outputs and scratch space share one seam
type SourceFSAdapter interface {
	// Get loads every C source under roots, sorted by path. A root is a file,
	// a directory (top level only) or a directory followed by "/...".
	Get(roots []m.Path) ([]m.Source, error)
	ReadFile(path m.Path) ([]byte, error)
	FileInfo(path m.Path) (os.FileInfo, error)
	// CreateTempDir makes a scratch directory; callers remove it with RemoveAll.
	CreateTempDir(pattern string) (m.Path, error)
	RemoveAll(path m.Path) error
	// WriteFile creates missing parent directories before writing.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get implements SourceFSAdapter. Files reached through several roots are
// returned once.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	seen := make(map[m.Path]struct{})
	sources := []m.Source{}

	add := func(path string) error {
		if !isCSource(path) {
			return nil
		}

		source, err := a.load(path)
		if err != nil {
			return err
		}

		if _, dup := seen[source.Origin]; !dup {
			seen[source.Origin] = struct{}{}
			sources = append(sources, source)
		}

		return nil
	}

	for _, root := range roots {
		dir, recursive, err := resolveRoot(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot read input %s: %w", root, err)
		}

		if !info.IsDir() {
			err = add(dir)
		} else {
			err = scanDir(dir, recursive, add)
		}

		if err != nil {
			return nil, err
		}
	}

	slices.SortFunc(sources, func(x, y m.Source) int { return cmp.Compare(x.Origin, y.Origin) })

	return sources, nil
}

// ReadFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading the user's own source is the point of the tool
	return os.ReadFile(string(path))
}

// FileInfo implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// CreateTempDir implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) CreateTempDir(pattern string) (m.Path, error) {
	dir, err := os.MkdirTemp("", pattern)

	return m.Path(dir), err
}

// RemoveAll implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// WriteFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// JoinPath implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func (a *LocalSourceFSAdapter) load(path string) (m.Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, err
	}

	content, err := a.ReadFile(m.Path(abs))
	if err != nil {
		return m.Source{}, fmt.Errorf("failed to read %s: %w", abs, err)
	}

	return m.Source{Origin: m.Path(abs), Content: content}, nil
}

// scanDir calls fn for every regular file in dir, descending only when
// recursive is set.
func scanDir(dir string, recursive bool, fn func(path string) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir() && path != dir && !recursive:
			return filepath.SkipDir
		case d.IsDir():
			return nil
		default:
			return fn(path)
		}
	})
}

// resolveRoot strips the recursive suffix, expands a leading "~" and makes
// the path absolute.
func resolveRoot(root string) (string, bool, error) {
	path, recursive := strings.CutSuffix(root, recursiveSuffix)

	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		path = filepath.Join(home, strings.TrimPrefix(rest, string(os.PathSeparator)))
	}

	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func isCSource(path string) bool {
	return filepath.Ext(path) == cFileExt && !strings.HasSuffix(path, minifiedSuffix)
}
