// SPDX-License-Identifier: MIT

package powerset

import (
	"math"

	"github.com/katalvlaran/evidence/lattice"
)

const (
	panicIterationLimit = "powerset: WithIterationLimit: limit must be ≥ 1"
	panicPriorInvalid   = "powerset: WithPriors: priors must be finite and non-negative"
)

// Option configures a Powerset before construction.
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	iterationLimit int       // lattice.DefaultIterationLimit
	priors         []float64 // nil ⇒ every leaf weighs 1
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{iterationLimit: lattice.DefaultIterationLimit}
}

// WithIterationLimit sets the inclusive element-count ceiling for
// enumeration: 2^n ≤ limit enumerates. Panics when limit < 1.
func WithIterationLimit(limit int) Option {
	if limit < 1 {
		panic(panicIterationLimit)
	}

	return func(o *Options) { o.iterationLimit = limit }
}

// WithPriors sets per-leaf prior weights used by pignistic transforms.
// The slice length is validated against the leaf count at construction.
// Panics on non-finite or negative priors.
func WithPriors(priors []float64) Option {
	for _, p := range priors {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			panic(panicPriorInvalid)
		}
	}
	cp := append([]float64(nil), priors...)

	return func(o *Options) { o.priors = cp }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
