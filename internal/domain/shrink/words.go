package shrink

import (
	m "github.com/mouse-blink/cmin/internal/model"
)

// collectWords gathers every identifier-like word of the file and the set of
// names pinned by macro definitions.
//
// A macro body is opaque text, so a body that mentions a variable by name
// only keeps working if that variable keeps its name. Parameters of a
// function-like macro are local to the macro and are not pinned.
func collectWords(root *m.Node, src []byte) ([]string, wordSet) {
	seen := wordSet{}
	pinned := wordSet{}

	var words []string

	addWord := func(w string) {
		if w == "" || seen.has(w) {
			return
		}

		seen.add(w)
		words = append(words, w)
	}

	root.Walk(func(n *m.Node) bool {
		switch n.Kind {
		case m.KindIdentifier, m.KindName:
			addWord(n.Text(src))
		case m.KindMacroDefinition:
			params, body := macroWords(n, src)
			for _, w := range params {
				addWord(w)
			}

			local := newWordSet(params...)
			for _, w := range body {
				addWord(w)

				if !local.has(w) {
					pinned.add(w)
				}
			}
		}

		return true
	})

	return words, pinned
}

// macroWords splits a macro definition into the words of its parameter list
// and the words of its name and replacement text.
func macroWords(def *m.Node, src []byte) (params, body []string) {
	for _, child := range def.Children {
		switch child.Kind {
		case m.KindMacroParams:
			params = append(params, scanWords(child.Text(src))...)
		case m.KindMacroValue, m.KindIdentifier:
			body = append(body, scanWords(child.Text(src))...)
		}
	}

	return params, body
}

// scanWords returns the identifier-shaped words of text in order.
func scanWords(text string) []string {
	var words []string

	for i := 0; i < len(text); {
		if !isIdentStart(text[i]) {
			// Skip the tail of numbers such as 0x1F or 10UL.
			if isDigit(text[i]) {
				for i < len(text) && isIdentChar(text[i]) {
					i++
				}

				continue
			}

			i++

			continue
		}

		j := i + 1
		for j < len(text) && isIdentChar(text[j]) {
			j++
		}

		words = append(words, text[i:j])
		i = j
	}

	return words
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
