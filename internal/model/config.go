package model

// DefaultMaxDepth bounds tree traversal depth unless configured otherwise.
const DefaultMaxDepth = 4096

// Config mirrors the .cmin.toml file.
type Config struct {
	Minify MinifyConfig `toml:"minify"`
	Check  CheckConfig  `toml:"check"`
}

// MinifyConfig selects the pipeline stages and their limits.
type MinifyConfig struct {
	Rename            bool     `toml:"rename"`
	StripComments     bool     `toml:"strip_comments"`
	CompactWhitespace bool     `toml:"compact_whitespace"`
	MaxDepth          int      `toml:"max_depth"`
	Reserved          []string `toml:"reserved"`
}

// CheckConfig configures the compile-and-run equivalence harness.
type CheckConfig struct {
	CC       string   `toml:"cc"`
	CFlags   []string `toml:"cflags"`
	Parallel int      `toml:"parallel"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Minify: MinifyConfig{
			Rename:            true,
			StripComments:     true,
			CompactWhitespace: true,
			MaxDepth:          DefaultMaxDepth,
		},
		Check: CheckConfig{
			CC:       "cc",
			Parallel: 1,
		},
	}
}
