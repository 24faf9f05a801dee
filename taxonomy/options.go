// SPDX-License-Identifier: MIT

package taxonomy

import "github.com/katalvlaran/evidence/lattice"

const panicIterationLimit = "taxonomy: WithIterationLimit: limit must be ≥ 1"

// Option configures a Taxonomy before construction.
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	iterationLimit int // lattice.DefaultIterationLimit
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{iterationLimit: lattice.DefaultIterationLimit}
}

// WithIterationLimit sets the inclusive element-count ceiling for
// enumeration: Len()+1 ≤ limit enumerates, bottom included. Panics when
// limit < 1.
func WithIterationLimit(limit int) Option {
	if limit < 1 {
		panic(panicIterationLimit)
	}

	return func(o *Options) { o.iterationLimit = limit }
}
