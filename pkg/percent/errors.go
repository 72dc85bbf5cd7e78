package percent

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a value could not be normalized.
type ErrorKind int

const (
	// KindNone is reported for successful results and unclassified errors.
	KindNone ErrorKind = iota

	// KindEmptyInput means the value was empty, whitespace only, or had
	// nothing numeric left after cleaning.
	KindEmptyInput

	// KindMalformed means a sign, point or percent symbol was duplicated or
	// misplaced, or no digits were present.
	KindMalformed
)

// String returns the stable identifier used in logs and serialized output.
func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindMalformed:
		return "malformed_format"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var (
	// ErrEmptyInput is the sentinel behind every KindEmptyInput error.
	ErrEmptyInput = errors.New("value is empty or whitespace")

	// ErrMalformed is the sentinel behind every KindMalformed error.
	ErrMalformed = errors.New("value is not a valid percent representation")
)

// FormatError describes a rejected value.
// It unwraps to ErrEmptyInput or ErrMalformed depending on Kind.
type FormatError struct {
	Kind ErrorKind

	// Input is the trimmed value that was being cleaned.
	Input string

	// Offset is the byte offset of the offending symbol in Input,
	// or -1 when the whole value was rejected.
	Offset int

	// Symbol is the offending symbol, zero when Offset is -1.
	Symbol rune

	Reason string
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%v: %s (%q at offset %d)", e.Unwrap(), e.Reason, e.Symbol, e.Offset)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s", e.Unwrap(), e.Reason)
	}
	return e.Unwrap().Error()
}

// Unwrap returns the sentinel matching the error kind.
func (e *FormatError) Unwrap() error {
	if e.Kind == KindEmptyInput {
		return ErrEmptyInput
	}
	return ErrMalformed
}

// KindOf classifies err. Errors that are neither ErrEmptyInput nor
// ErrMalformed report KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	default:
		return KindNone
	}
}

func emptyError(input, reason string) *FormatError {
	return &FormatError{Kind: KindEmptyInput, Input: input, Offset: -1, Reason: reason}
}

func symbolError(input string, offset int, symbol rune, reason string) *FormatError {
	return &FormatError{Kind: KindMalformed, Input: input, Offset: offset, Symbol: symbol, Reason: reason}
}

func malformedError(input, reason string) *FormatError {
	return &FormatError{Kind: KindMalformed, Input: input, Offset: -1, Reason: reason}
}
