// Package domain contains the minification pipeline and the file-level
// workflows built on top of it.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/mouse-blink/cmin/internal/adapter"
	"github.com/mouse-blink/cmin/internal/domain/shrink"
	m "github.com/mouse-blink/cmin/internal/model"
)

// ErrParse wraps failures of the parser adapter.
var ErrParse = errors.New("failed to parse source")

// ErrTooDeep is returned when the input nests deeper than Options.MaxDepth.
var ErrTooDeep = shrink.ErrTooDeep

// Options selects the pipeline stages.
type Options struct {
	Rename            bool
	StripComments     bool
	CompactWhitespace bool
	MaxDepth          int
	Reserved          []string
}

// DefaultOptions enables every stage.
func DefaultOptions() Options {
	return OptionsFromConfig(m.DefaultConfig().Minify)
}

// OptionsFromConfig converts the [minify] table of a config file.
func OptionsFromConfig(cfg m.MinifyConfig) Options {
	return Options{
		Rename:            cfg.Rename,
		StripComments:     cfg.StripComments,
		CompactWhitespace: cfg.CompactWhitespace,
		MaxDepth:          cfg.MaxDepth,
		Reserved:          cfg.Reserved,
	}
}

// Minifier defines the interface for turning C source into its minified form.
type Minifier interface {
	Minify(ctx context.Context, src []byte, opts Options) (m.Result, error)
}

// minifier composes the shrink passes over a parsed tree.
type minifier struct {
	parser adapter.CFileAdapter
}

// NewMinifier creates a Minifier that parses with the given adapter.
func NewMinifier(parser adapter.CFileAdapter) Minifier {
	return &minifier{parser: parser}
}

func (mn *minifier) Minify(ctx context.Context, src []byte, opts Options) (m.Result, error) {
	root, err := mn.parser.Parse(ctx, src)
	if err != nil {
		return m.Result{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	stats := m.Stats{InputBytes: len(src)}

	var edits []m.Edit

	if opts.StripComments {
		comments := shrink.CollectComments(root)
		stats.CommentsRemoved = len(comments)
		edits = append(edits, comments...)
	}

	if opts.Rename {
		renamed, err := shrink.Rename(root, src, shrink.RenameOptions{
			MaxDepth: opts.MaxDepth,
			Reserved: opts.Reserved,
		})
		if err != nil {
			return m.Result{}, err
		}

		stats.IdentifiersRenamed = renamed.Renamed
		stats.NamesGenerated = renamed.NamesGenerated
		stats.MaxScopeDepth = renamed.MaxScopeDepth
		edits = append(edits, renamed.Edits...)
	}

	code := shrink.Reconstruct(src, edits)

	if opts.CompactWhitespace {
		code = shrink.Compact(code)
	}

	stats.OutputBytes = len(code)

	return m.Result{Code: code, Stats: stats}, nil
}
