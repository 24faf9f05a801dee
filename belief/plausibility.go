// SPDX-License-Identifier: MIT

package belief

import (
	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// ComplementedIterable is a lattice with both a complement and an enumeration.
type ComplementedIterable[X lattice.Element[X]] interface {
	lattice.IterableLattice[X]
	lattice.ComplementedLattice[X]
}

// MassToPlausibility returns pl(x) = Σ_{y ∧ x ≠ ⊥} m(y) for every element x.
//
// Complexity: O(N·F) time, O(N) memory for N lattice elements and F focal
// elements of the input.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate.
func MassToPlausibility[X lattice.Element[X]](l lattice.IterableLattice[X], m *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, m); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}

	return forward[X](l, m, elems, func(x, y lattice.SafeElement[X]) bool {
		return !l.UnsafeDisjoint(x, y)
	})
}

// PlausibilityToMass inverts MassToPlausibility through the implicability of
// the complement, b(z) = 1 − pl(¬z), followed by the implicability sweep.
// The plausibility must come from a normalized mass.
//
// Complexity: O(N²) time in the worst case, O(N) memory; each residual
// subtracts the masses already recovered.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate, ErrNegativeResidual,
// assignment.ErrZeroWeight.
func PlausibilityToMass[X lattice.Element[X]](l ComplementedIterable[X], pl *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, pl); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(elems))
	for i, z := range elems {
		values[i] = 1 - pl.Weight(l.UnsafeNot(z))
	}
	entries, err := inverse(elems, values, l.UnsafeImpliedJoin)
	if err != nil {
		return nil, err
	}

	return collect[X](l, len(elems), entries)
}
