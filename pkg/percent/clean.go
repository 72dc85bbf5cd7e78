package percent

import (
	"strings"
)

// Clean extracts the numeric symbols from raw.
//
// Digits and the symbols '-', '.' and '%' are kept; every other character is
// dropped. A kept '-' must be the first kept symbol, '.' and '%' may appear
// once each, and '%' must be the last kept symbol. At least one digit must
// remain. Violations are reported as *FormatError.
func Clean(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if len(value) == 0 {
		return "", emptyError(value, "nothing to normalize")
	}

	var sb strings.Builder
	sb.Grow(len(value))

	negCount, dotCount, percentCount := 0, 0, 0
	percentAt := -1

	for i, c := range value {
		switch {
		case c >= '0' && c <= '9':
			sb.WriteRune(c)

		case c == '-':
			if sb.Len() != 0 {
				return "", symbolError(value, i, c, "sign must precede the number")
			}
			sb.WriteRune(c)
			negCount++

		case c == '.':
			if dotCount != 0 {
				return "", symbolError(value, i, c, "more than one decimal point")
			}
			sb.WriteRune(c)
			dotCount++

		case c == '%':
			if percentCount != 0 {
				return "", symbolError(value, i, c, "more than one percent sign")
			}
			sb.WriteRune(c)
			percentCount++
			percentAt = i
		}
	}

	str := sb.String()

	if percentCount > 0 && strings.IndexByte(str, '%') != len(str)-1 {
		return "", symbolError(value, percentAt, '%', "percent sign must follow the number")
	}

	// Every kept symbol is a sign, point or percent, or nothing was kept.
	if negCount+dotCount+percentCount >= len(str) {
		return "", malformedError(value, "no digits found")
	}

	return str, nil
}

// SymbolCleaner adapts Clean to the cleaner.Cleaner contract.
type SymbolCleaner struct{}

// NewSymbolCleaner creates the cleaner used as the last stage of a Normalizer.
func NewSymbolCleaner() *SymbolCleaner {
	return &SymbolCleaner{}
}

// Clean implements cleaner.Cleaner.
func (c *SymbolCleaner) Clean(raw string) (string, error) {
	return Clean(raw)
}

// Name returns the cleaner type.
func (c *SymbolCleaner) Name() string {
	return "symbols"
}
