package percent

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Convert renders cleaned symbols as a canonical decimal string.
//
// Without a trailing '%' the value keeps the scale it was written with
// ("1.50" stays "1.50", ".5" becomes "0.5", "5." becomes "5"). With a
// trailing '%' the value is divided by 100 exactly and rendered with the
// input's scale, widened when the quotient needs more digits ("12%" becomes
// "0.12", "50.00%" becomes "0.50", "12.50%" becomes "0.125").
//
// symbols must come from Clean; anything the decimal parser rejects is
// reported as a KindMalformed *FormatError.
func Convert(symbols string) (string, error) {
	if number, ok := strings.CutSuffix(symbols, "%"); ok {
		d, err := parseDecimal(number)
		if err != nil {
			return "", malformedError(symbols, err.Error())
		}
		q := d.Shift(-2)
		return q.StringFixed(max(-d.Exponent(), minScale(q))), nil
	}

	d, err := parseDecimal(symbols)
	if err != nil {
		return "", malformedError(symbols, err.Error())
	}
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent()), nil
	}
	return d.String(), nil
}

// minScale returns the number of fraction digits d needs without trailing zeros.
func minScale(d decimal.Decimal) int32 {
	s := d.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return int32(len(s) - i - 1)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	// Keep both the integer and the fraction part non-empty.
	s = strings.TrimSuffix(s, ".")
	switch {
	case strings.HasPrefix(s, "-."):
		s = "-0" + s[1:]
	case strings.HasPrefix(s, "."):
		s = "0" + s
	}
	return decimal.NewFromString(s)
}
