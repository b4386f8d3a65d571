package shrink

import "bytes"

// Compact removes whitespace that does not affect tokenization.
//
// It is a single left-to-right scan over already edited text:
//
//   - a '#' starts a preprocessor line, which is moved onto its own line and
//     copied through its newline unchanged;
//   - string and character literals are copied through the closing quote,
//     with a backslash escaping the next byte;
//   - comments left in place are copied whole, and a line comment keeps its
//     newline;
//   - a whitespace run is dropped, or replaced by one space when the bytes on
//     either side would otherwise merge (identifier characters, "+ +" or "- -");
//   - everything else is copied.
//
// This is a two-byte adjacency rule, not a tokenizer. Other operator pairs
// such as "< <", "& &" or "/ /" are not protected, and a directive continued
// with a trailing backslash ends at the first newline.
func Compact(code []byte) []byte {
	out := make([]byte, 0, len(code))
	n := len(code)

	for i := 0; i < n; {
		switch c := code[i]; {
		case c == '#':
			i = copyDirective(code, i, &out)
		case c == '"' || c == '\'':
			i = copyLiteral(code, i, &out)
		case c == '/' && i+1 < n && (code[i+1] == '/' || code[i+1] == '*'):
			i = copyComment(code, i, &out)
		case isSpace(c):
			for i < n && isSpace(code[i]) {
				i++
			}

			if len(out) > 0 && i < n && needsSpace(out[len(out)-1], code[i]) {
				out = append(out, ' ')
			}
		default:
			out = append(out, c)
			i++
		}
	}

	return out
}

// copyDirective copies the line starting at code[i] and returns the index
// after its newline.
func copyDirective(code []byte, i int, out *[]byte) int {
	if len(*out) > 0 && (*out)[len(*out)-1] != '\n' {
		*out = append(*out, '\n')
	}

	for i < len(code) && code[i] != '\n' {
		*out = append(*out, code[i])
		i++
	}

	if i < len(code) {
		*out = append(*out, '\n')
		i++
	}

	return i
}

// copyLiteral copies a quoted literal starting at code[i] and returns the
// index after its closing quote. An unterminated literal runs to the end.
func copyLiteral(code []byte, i int, out *[]byte) int {
	quote := code[i]
	*out = append(*out, quote)
	i++

	for i < len(code) {
		c := code[i]
		*out = append(*out, c)
		i++

		switch c {
		case '\\':
			if i < len(code) {
				*out = append(*out, code[i])
				i++
			}
		case quote:
			return i
		}
	}

	return i
}

// copyComment copies the comment starting at code[i] and returns the index
// after it.
func copyComment(code []byte, i int, out *[]byte) int {
	end := len(code)

	if code[i+1] == '/' {
		if nl := bytes.IndexByte(code[i:], '\n'); nl >= 0 {
			end = i + nl + 1
		}
	} else if closing := bytes.Index(code[i+2:], []byte("*/")); closing >= 0 {
		end = i + 2 + closing + 2
	}

	*out = append(*out, code[i:end]...)

	return end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// needsSpace reports whether prev and next would fuse into a different token
// if written side by side.
func needsSpace(prev, next byte) bool {
	switch {
	case isWordByte(prev) && isWordByte(next):
		return true
	case prev == '+' && next == '+', prev == '-' && next == '-':
		return true
	default:
		return false
	}
}

// isWordByte treats bytes of multi-byte UTF-8 sequences as identifier
// characters so that extended identifiers are never joined.
func isWordByte(b byte) bool {
	return isIdentChar(b) || b >= 0x80
}
