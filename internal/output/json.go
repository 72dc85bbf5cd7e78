package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/pctnorm/pkg/percent"
)

// JSONWriter writes JSON output.
type JSONWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

// Write writes the result as a single JSON object.
func (w *JSONWriter) Write(r percent.Result) error {
	var output []byte
	var err error

	if w.pretty {
		output, err = json.MarshalIndent(NewRecord(r), "", w.indent)
	} else {
		output, err = json.Marshal(NewRecord(r))
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return w.w.Flush()
}
