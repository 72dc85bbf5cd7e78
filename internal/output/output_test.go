package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/pctnorm/pkg/percent"
)

var (
	okResult     = percent.Succeeded("12%", "0.12")
	failedResult = percent.Normalize("1%2%")
)

// --- NewWriter Factory Tests ---

func TestNewWriter_Formats(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "*output.TextWriter"},
		{FormatJSON, "*output.JSONWriter"},
		{FormatYAML, "*output.YAMLWriter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewWriter(&bytes.Buffer{}, tt.format)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if got := typeName(w); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func typeName(w Writer) string {
	switch w.(type) {
	case *TextWriter:
		return "*output.TextWriter"
	case *JSONWriter:
		return "*output.JSONWriter"
	case *YAMLWriter:
		return "*output.YAMLWriter"
	default:
		return "unknown"
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("jsonl"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected 'unsupported' in error, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", " yaml "} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) expected error")
	}
}

// --- Record Tests ---

func TestNewRecord(t *testing.T) {
	rec := NewRecord(okResult)
	if rec.Input != "12%" || rec.Value != "0.12" || rec.Error != "" || rec.Kind != "" {
		t.Errorf("unexpected success record %+v", rec)
	}

	rec = NewRecord(failedResult)
	if rec.Input != "1%2%" || rec.Value != "" {
		t.Errorf("unexpected failure record %+v", rec)
	}
	if rec.Kind != "malformed_format" {
		t.Errorf("Kind = %q, want %q", rec.Kind, "malformed_format")
	}
	if rec.Error == "" {
		t.Error("expected error text in failure record")
	}
}

// --- TextWriter Tests ---

func TestTextWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)

	if err := w.Write(okResult); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != "0.12\n" {
		t.Errorf("Write() = %q, want %q", buf.String(), "0.12\n")
	}

	buf.Reset()
	if err := w.Write(failedResult); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "error: ") {
		t.Errorf("expected error line, got %q", buf.String())
	}
}

// --- JSONWriter Tests ---

func TestJSONWriter_Success(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, false, "")

	if err := w.Write(okResult); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `{"input":"12%","value":"0.12"}` + "\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestJSONWriter_Failure(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")

	if err := w.Write(failedResult); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var rec Record
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if rec.Kind != "malformed_format" || rec.Value != "" {
		t.Errorf("unexpected record %+v", rec)
	}

	// Pretty output should be indented
	if !strings.Contains(buf.String(), "\n  \"input\"") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

// --- YAMLWriter Tests ---

func TestYAMLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	if err := w.Write(okResult); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var rec Record
	if err := yaml.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("failed to parse YAML: %v", err)
	}
	if rec != NewRecord(okResult) {
		t.Errorf("got %+v, want %+v", rec, NewRecord(okResult))
	}

	if strings.Contains(buf.String(), "error:") {
		t.Errorf("success output should omit error, got %q", buf.String())
	}
}
