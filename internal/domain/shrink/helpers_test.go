package shrink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cmin/internal/adapter"
	m "github.com/mouse-blink/cmin/internal/model"
)

func parse(t *testing.T, src string) *m.Node {
	t.Helper()

	root, err := adapter.NewLocalCFileAdapter().Parse(context.Background(), []byte(src))
	require.NoError(t, err)

	return root
}

// minify runs every pass with default options.
func minify(t *testing.T, src string) string {
	t.Helper()

	root := parse(t, src)

	renamed, err := Rename(root, []byte(src), RenameOptions{})
	require.NoError(t, err)

	edits := append(CollectComments(root), renamed.Edits...)

	return string(Compact(Reconstruct([]byte(src), edits)))
}
