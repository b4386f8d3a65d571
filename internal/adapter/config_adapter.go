package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/cmin/internal/model"
)

// ConfigFileName is the file searched for when no explicit config is given.
const ConfigFileName = ".cmin.toml"

// ConfigAdapter locates and decodes cmin configuration files.
type ConfigAdapter interface {
	// Find walks up from startDir looking for ConfigFileName.
	Find(startDir m.Path) (m.Path, bool, error)
	// Load decodes path on top of m.DefaultConfig.
	Load(path m.Path) (m.Config, error)
}

// TOMLConfigAdapter reads configuration with BurntSushi/toml.
type TOMLConfigAdapter struct{}

// NewTOMLConfigAdapter constructs a TOMLConfigAdapter.
func NewTOMLConfigAdapter() *TOMLConfigAdapter {
	return &TOMLConfigAdapter{}
}

// Find returns the nearest config file at or above startDir.
func (a *TOMLConfigAdapter) Find(startDir m.Path) (m.Path, bool, error) {
	start := string(startDir)
	if start == "" {
		start = "."
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return m.Path(candidate), true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Load decodes the TOML file at path. Keys absent from the file keep their
// default values; unknown keys are rejected so typos do not pass silently.
func (a *TOMLConfigAdapter) Load(path m.Path) (m.Config, error) {
	cfg := m.DefaultConfig()

	meta, err := toml.DecodeFile(string(path), &cfg)
	if err != nil {
		return m.Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return m.Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if cfg.Minify.MaxDepth <= 0 {
		cfg.Minify.MaxDepth = m.DefaultMaxDepth
	}

	if cfg.Check.Parallel <= 0 {
		cfg.Check.Parallel = 1
	}

	return cfg, nil
}
