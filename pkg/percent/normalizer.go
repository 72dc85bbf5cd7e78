// Package percent normalizes free-form percent and decimal text into a
// canonical decimal string.
//
// Normalization runs in two stages. Clean extracts the numeric symbols from
// noisy input ("a-bc1,345.00 %" becomes "-1345.00%") and rejects misplaced or
// repeated signs, points and percent signs. Convert then parses the symbols
// with exact decimal arithmetic, dividing by 100 when a percent sign is present.
//
//	r := percent.Normalize("12%")
//	if r.Success() {
//	    fmt.Println(r.Normalized) // 0.12
//	}
package percent

import (
	"github.com/jmylchreest/pctnorm/pkg/cleaner"
)

// Normalizer runs optional pre-cleaners, Clean and Convert.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	cleaner cleaner.Cleaner
}

// Option configures a Normalizer.
type Option func(*config)

type config struct {
	preCleaners []cleaner.Cleaner
	foldWidth   bool
}

// WithPreCleaners adds cleaners that run, in order, before symbol cleaning.
func WithPreCleaners(cleaners ...cleaner.Cleaner) Option {
	return func(c *config) {
		c.preCleaners = append(c.preCleaners, cleaners...)
	}
}

// WithWidthFolding folds full-width and other compatibility forms
// ("１２％") to ASCII before any other cleaner runs.
func WithWidthFolding() Option {
	return func(c *config) {
		c.foldWidth = true
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var stages []cleaner.Cleaner
	if cfg.foldWidth {
		stages = append(stages, cleaner.NewWidth())
	}
	stages = append(stages, cfg.preCleaners...)

	if len(stages) == 0 {
		return &Normalizer{cleaner: NewSymbolCleaner()}
	}
	stages = append(stages, NewSymbolCleaner())
	return &Normalizer{cleaner: cleaner.NewChain(stages...)}
}

var defaultNormalizer = New()

// Normalize normalizes raw with the default configuration.
func Normalize(raw string) Result {
	return defaultNormalizer.Normalize(raw)
}

// Normalize cleans and converts raw. Failures are returned in the Result,
// never as a panic.
func (n *Normalizer) Normalize(raw string) Result {
	symbols, err := n.cleaner.Clean(raw)
	if err != nil {
		return Failed(raw, err)
	}

	value, err := Convert(symbols)
	if err != nil {
		return Failed(raw, err)
	}
	return Succeeded(raw, value)
}

// Name describes the cleaning pipeline, e.g. "chain(width->symbols)".
func (n *Normalizer) Name() string {
	return n.cleaner.Name()
}
