package shrink

import (
	"strings"

	m "github.com/mouse-blink/cmin/internal/model"
)

const keepDirective = "cmin:keep"

// keepRule is the merged effect of one or more cmin:keep comments.
//
//	/* cmin:keep */             leading, not above a function: nothing is renamed
//	// cmin:keep                right above a function: its locals keep their names
//	// cmin:keep hook counter   these names are never renamed anywhere
type keepRule struct {
	all   bool
	names wordSet
}

func mergeKeepRule(dst *keepRule, src keepRule) {
	if src.all {
		dst.all = true
	}

	if len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(wordSet, len(src.names))
	}

	for name := range src.names {
		dst.names.add(name)
	}
}

func parseKeepDirective(commentText string) (keepRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, keepDirective) {
		return keepRule{}, false
	}

	rest := strings.TrimPrefix(s, keepDirective)
	if rest != "" && !isSpace(rest[0]) {
		// cmin:keeper and friends are not directives.
		return keepRule{}, false
	}

	names := scanWords(rest)
	if len(names) == 0 {
		return keepRule{all: true}, true
	}

	return keepRule{names: newWordSet(names...)}, true
}

type keepIndex struct {
	file  bool
	names wordSet
	funcs map[*m.Node]struct{}
}

// frozen reports whether fn was marked with a bare directive.
func (k keepIndex) frozen(fn *m.Node) bool {
	_, ok := k.funcs[fn]
	return ok
}

// buildKeepIndex reads every cmin:keep comment of the file. A bare directive
// binds to the function definition directly below it; otherwise it only
// counts among the file's leading comments.
func buildKeepIndex(root *m.Node, src []byte) keepIndex {
	index := keepIndex{names: wordSet{}, funcs: map[*m.Node]struct{}{}}

	root.Walk(func(n *m.Node) bool {
		if n.Kind != m.KindComment {
			return true
		}

		if r, ok := parseKeepDirective(n.Text(src)); ok {
			index.names.add(keysOf(r.names)...)
		}

		return true
	})

	var (
		leading = true
		pending keepRule
	)

	for _, child := range root.Children {
		if child.Kind == m.KindComment {
			if r, ok := parseKeepDirective(child.Text(src)); ok {
				mergeKeepRule(&pending, r)
			}

			continue
		}

		switch {
		case !pending.all:
		case child.Kind == m.KindFunction:
			index.funcs[child] = struct{}{}
		case leading:
			index.file = true
		}

		leading = false
		pending = keepRule{}
	}

	if leading && pending.all {
		index.file = true
	}

	return index
}

func keysOf(s wordSet) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	return keys
}
