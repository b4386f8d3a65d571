// Package shrink implements the individual minification passes: comment
// collection, scope-aware renaming, edit reconstruction and whitespace
// compaction.
package shrink

import m "github.com/mouse-blink/cmin/internal/model"

// CollectComments returns a removal edit for every comment under root.
func CollectComments(root *m.Node) []m.Edit {
	var edits []m.Edit

	root.Walk(func(n *m.Node) bool {
		if n.Kind == m.KindComment {
			edits = append(edits, m.Remove(n.Start, n.End))
			return false
		}

		return true
	})

	return edits
}
