package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cmin/internal/model"
)

func TestTOMLConfigAdapter_Find(t *testing.T) {
	adapter := NewTOMLConfigAdapter()

	root := t.TempDir()
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	t.Run("not found", func(t *testing.T) {
		// A stray config above the temp dir would make this flaky.
		if _, err := os.Stat(filepath.Join(filepath.Dir(root), ConfigFileName)); err == nil {
			t.Skip("config file present above temp dir")
		}

		_, ok, err := adapter.Find(m.Path(nested))
		require.NoError(t, err)
		if ok {
			t.Skip("config file present above temp dir")
		}
	})

	t.Run("found in ancestor", func(t *testing.T) {
		want := filepath.Join(root, ConfigFileName)
		writeTestFile(t, want, "[minify]\n")

		got, ok, err := adapter.Find(m.Path(nested))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, m.Path(want), got)
	})
}

func TestTOMLConfigAdapter_Load(t *testing.T) {
	adapter := NewTOMLConfigAdapter()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeTestFile(t, path, `
[minify]
rename = false
reserved = ["hook", "table"]

[check]
cc = "clang"
cflags = ["-std=c11", "-Wall"]
`)

		cfg, err := adapter.Load(m.Path(path))
		require.NoError(t, err)

		want := m.DefaultConfig()
		want.Minify.Rename = false
		want.Minify.Reserved = []string{"hook", "table"}
		want.Check.CC = "clang"
		want.Check.CFlags = []string{"-std=c11", "-Wall"}

		assert.Equal(t, want, cfg)
	})

	t.Run("non positive limits fall back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeTestFile(t, path, "[minify]\nmax_depth = 0\n[check]\nparallel = -2\n")

		cfg, err := adapter.Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, m.DefaultMaxDepth, cfg.Minify.MaxDepth)
		assert.Equal(t, 1, cfg.Check.Parallel)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeTestFile(t, path, "[minify]\nstrip_coments = true\n")

		_, err := adapter.Load(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strip_coments")
	})

	t.Run("invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeTestFile(t, path, "[minify\n")

		_, err := adapter.Load(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.Load(m.Path(filepath.Join(t.TempDir(), "nope.toml")))
		require.Error(t, err)
	})
}
