// Package input acquires the value to normalize.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultPrompt is written before reading a value interactively.
const DefaultPrompt = "Enter Value to normalize:"

// Collector supplies one value. It returns io.EOF when no value is available.
type Collector interface {
	Collect() (string, error)
}

// LineCollector prompts on one stream and reads a single line from another.
type LineCollector struct {
	prompt string
	in     *bufio.Reader
	out    io.Writer
}

// NewLineCollector creates a collector reading from in. The prompt is written
// to out followed by a newline; an empty prompt or nil out writes nothing.
func NewLineCollector(in io.Reader, out io.Writer, prompt string) *LineCollector {
	return &LineCollector{
		prompt: prompt,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Collect writes the prompt and returns the next line without its line ending.
// A final line without a newline is returned as is; io.EOF is returned only
// when nothing was read.
func (c *LineCollector) Collect() (string, error) {
	if c.out != nil && c.prompt != "" {
		if _, err := fmt.Fprintln(c.out, c.prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read value: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// StaticCollector returns a fixed value once, then io.EOF.
type StaticCollector struct {
	value string
	done  bool
}

// NewStaticCollector creates a collector for a value supplied up front,
// such as a command-line argument.
func NewStaticCollector(value string) *StaticCollector {
	return &StaticCollector{value: value}
}

// Collect returns the value on the first call.
func (c *StaticCollector) Collect() (string, error) {
	if c.done {
		return "", io.EOF
	}
	c.done = true
	return c.value, nil
}
