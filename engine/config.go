package engine

import "github.com/nodetree/boolrank/emit"

// config holds the settings an Option can adjust before Init builds the
// tables. indexBase and alphabetCap both default to values chosen so that
// Init(m) with no options behaves exactly per the module's default
// external-interface contract.
type config struct {
	indexBase   int
	alphabetCap int
}

func defaultConfig() config {
	return config{
		indexBase:   1,
		alphabetCap: emit.AlphabetCap,
	}
}

// Option configures an Engine before Init builds its tables.
type Option func(*config)

// WithIndexBase selects whether Unrank and Total treat ranks as 0-based
// (base 0, valid ranks [0, Total())) or 1-based (base 1, valid ranks
// [1, Total()]). The default is 1.
func WithIndexBase(base int) Option {
	return func(c *config) { c.indexBase = base }
}

// WithAlphabetCap overrides the single-letter variable cap exposed via
// Engine.AlphabetCap. It does not restrict which M values Init accepts:
// every shape Init(m) can produce has at most m leaves, so any caller with
// m <= cap is guaranteed single-letter names regardless of this option.
func WithAlphabetCap(cap int) Option {
	return func(c *config) { c.alphabetCap = cap }
}
