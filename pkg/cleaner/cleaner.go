// Package cleaner defines the contract for text cleaning stages and the
// general-purpose stages shared by normalizers.
// A stage takes raw text and returns text that is closer to what the next
// stage expects, or an error when the text cannot be used at all.
package cleaner

// Cleaner transforms text for the next processing stage.
type Cleaner interface {
	// Clean transforms the input text.
	// Rejected input is reported as an error and the output is discarded.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
