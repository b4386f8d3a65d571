// Package controller provides output adapters for minified code and reports.
package controller

import (
	"io"
	"os"

	m "github.com/mouse-blink/cmin/internal/model"
)

// UI defines where minified code and reports are shown.
// Code goes to standard output untouched; everything else goes to the
// diagnostic stream so that `cmin file.c > out.c` stays clean.
type UI interface {
	// WriteCode emits minified code followed by a newline.
	WriteCode(code []byte) error
	// DisplayStats prints a per-file summary of what was changed.
	DisplayStats(results []m.FileResult) error
	// DisplayWritten reports a result that was written to a file.
	DisplayWritten(result m.FileResult)
	// DisplayCheckReports prints the equivalence check results.
	DisplayCheckReports(reports []m.CheckReport) error
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	// Check if writer is a *os.File
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	// Get file info
	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	// Check if it's a character device (terminal)
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
