package cleaner

import (
	"golang.org/x/text/unicode/norm"
)

// WidthCleaner folds compatibility characters to their canonical forms
// using Unicode NFKC, so full-width digits and symbols ("１２．５％")
// become ASCII ("12.5%"). It never fails.
type WidthCleaner struct{}

// NewWidth creates a new width-folding cleaner.
func NewWidth() *WidthCleaner {
	return &WidthCleaner{}
}

// Clean returns text in NFKC form.
func (c *WidthCleaner) Clean(text string) (string, error) {
	if norm.NFKC.IsNormalString(text) {
		return text, nil
	}
	return norm.NFKC.String(text), nil
}

// Name returns the cleaner type.
func (c *WidthCleaner) Name() string {
	return "width"
}
