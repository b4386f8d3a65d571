package model

// EditType represents the category of an edit.
type EditType string

const (
	// EditRemove drops the covered range from the output.
	EditRemove EditType = "remove"
	// EditReplace substitutes the covered range with Text.
	EditReplace EditType = "replace"
)

// Edit is a removal or replacement directive over the byte range [Start, End)
// of the original source.
type Edit struct {
	Type  EditType
	Start int
	End   int
	Text  string
}

// Remove builds a removal edit for [start, end).
func Remove(start, end int) Edit {
	return Edit{Type: EditRemove, Start: start, End: end}
}

// Replace builds a replacement edit for [start, end).
func Replace(start, end int, text string) Edit {
	return Edit{Type: EditReplace, Start: start, End: end, Text: text}
}
