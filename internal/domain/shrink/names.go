package shrink

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// keywords are never renamed and never generated.
var keywords = newWordSet(
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
	"_Alignas", "_Alignof", "_Atomic", "_Bool", "_Complex", "_Generic",
	"_Imaginary", "_Noreturn", "_Static_assert", "_Thread_local",
	"asm", "typeof",
)

// libraryNames are well-known library routines that are never renamed.
var libraryNames = newWordSet(
	"main", "printf", "fprintf", "sprintf", "snprintf", "scanf", "sscanf", "fscanf",
	"puts", "putchar", "getchar", "fgets", "fputs",
	"malloc", "calloc", "realloc", "free", "memcpy", "memmove", "memset", "memcmp",
	"strlen", "strcpy", "strncpy", "strcmp", "strncmp", "strcat", "strncat",
	"strchr", "strrchr", "strstr",
	"fopen", "fclose", "fread", "fwrite", "fseek", "ftell", "rewind", "fflush",
	"exit", "abort", "atexit", "getenv", "system", "atoi", "atol", "qsort",
	"assert", "abs",
)

// headerNames are objects and macros from the standard headers. A local
// carrying one of these names would be rewritten by the preprocessor or
// shadow something the program relies on.
var headerNames = newWordSet(
	"NULL", "EOF", "BUFSIZ", "FILE", "errno", "stdin", "stdout", "stderr",
	"SEEK_SET", "SEEK_CUR", "SEEK_END", "EXIT_SUCCESS", "EXIT_FAILURE",
	"true", "false", "bool", "va_list", "va_start", "va_arg", "va_end",
	"INT_MAX", "INT_MIN", "CHAR_BIT", "RAND_MAX",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	set.add(words...)

	return set
}

func (s wordSet) add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// IsReserved reports whether name is a C keyword or a listed library routine.
// Such identifiers are skipped by the classifier.
func IsReserved(name string) bool {
	return keywords.has(name) || libraryNames.has(name)
}

// ShortName maps index onto the bijective base-52 numbering over a-z then A-Z:
// 0 -> "a", 25 -> "z", 26 -> "A", 51 -> "Z", 52 -> "aa".
func ShortName(index int) string {
	if index < 0 {
		index = 0
	}

	var buf []byte

	for {
		buf = append(buf, alphabet[index%len(alphabet)])

		index /= len(alphabet)
		if index == 0 {
			break
		}

		index--
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// nameGenerator hands out short names, skipping every word in avoid.
type nameGenerator struct {
	avoid wordSet
}

func newNameGenerator(extra ...string) *nameGenerator {
	avoid := newWordSet(extra...)
	for _, set := range []wordSet{keywords, libraryNames, headerNames} {
		for w := range set {
			avoid.add(w)
		}
	}

	return &nameGenerator{avoid: avoid}
}

// next returns the first acceptable name at or after *counter and leaves
// *counter just past it.
func (g *nameGenerator) next(counter *int) string {
	name := ShortName(*counter)
	for g.avoid.has(name) {
		*counter++
		name = ShortName(*counter)
	}

	*counter++

	return name
}
