package shrink

import (
	"sort"

	m "github.com/mouse-blink/cmin/internal/model"
)

// Reconstruct applies edits to src and returns the rewritten text.
//
// Edits are applied in start order with a cursor that only moves forward.
// Text between edits is copied verbatim. A removal that would glue two
// tokens together (int/**/x) leaves a single space behind instead, the way a
// C compiler treats a comment.
//
// Two edits sharing a start offset are not a supported input: the stable
// sort keeps them in the order given and the second one, starting behind the
// cursor, is dropped. Classifier and comment edits come from disjoint tree
// tokens, so this does not arise for well-formed trees.
func Reconstruct(src []byte, edits []m.Edit) []byte {
	sorted := make([]m.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]byte, 0, len(src))
	pos := 0

	for _, e := range sorted {
		if e.Start < pos || e.End < e.Start || e.End > len(src) {
			continue
		}

		out = append(out, src[pos:e.Start]...)

		switch e.Type {
		case m.EditReplace:
			out = append(out, e.Text...)
		case m.EditRemove:
			if len(out) > 0 && e.End < len(src) && needsSpace(out[len(out)-1], src[e.End]) {
				out = append(out, ' ')
			}
		}

		pos = e.End
	}

	return append(out, src[pos:]...)
}
