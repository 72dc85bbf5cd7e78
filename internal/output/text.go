package output

import (
	"bufio"
	"io"

	"github.com/jmylchreest/pctnorm/pkg/percent"
)

// TextWriter writes the normalized value, or "error: <reason>" on failure.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a plain text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write writes one line for the result.
func (w *TextWriter) Write(r percent.Result) error {
	line := r.Normalized
	if !r.Success() {
		line = "error: " + r.Err.Error()
	}
	if _, err := w.w.WriteString(line + "\n"); err != nil {
		return err
	}
	return w.w.Flush()
}
