// SPDX-License-Identifier: MIT

package fusion

import (
	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// Referee is a combination rule. For one combination of focal elements,
// chosen[i] taken from sources[i], it returns how the combination's mass is
// redistributed: sub-weights in [0, 1] over output elements, summing to at
// most 1. Mass not returned is counted as conflict. The chosen slice is
// reused between calls and must not be retained.
type Referee[X lattice.Element[X]] interface {
	FromConditions(l lattice.Lattice[X], sources []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error)
}

// RefereeFunc adapts a plain function to Referee.
type RefereeFunc[X lattice.Element[X]] func(l lattice.Lattice[X], sources []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error)

// FromConditions calls f.
func (f RefereeFunc[X]) FromConditions(l lattice.Lattice[X], sources []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error) {
	return f(l, sources, chosen)
}

// Observer receives engine events. Implementations must be safe for
// concurrent use when one engine serves several goroutines.
type Observer interface {
	// ObserveFusion is called after every successful Fuse.
	ObserveFusion(sources, combinations int, conflict float64)

	// ObservePrune is called after every prune that changed the result size.
	ObservePrune(before, after int)
}

type nopObserver struct{}

func (nopObserver) ObserveFusion(int, int, float64) {}

func (nopObserver) ObservePrune(int, int) {}
