// SPDX-License-Identifier: MIT

package belief

import (
	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// MassToCommonality returns q(x) = Σ_{y ≥ x} m(y) for every element x.
//
// Complexity: O(N·F) time, O(N) memory for N lattice elements and F focal
// elements of the input.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate.
func MassToCommonality[X lattice.Element[X]](l lattice.IterableLattice[X], m *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, m); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}

	return forward[X](l, m, elems, l.UnsafeImpliesJoin)
}

// CommonalityToMass inverts MassToCommonality with a top to bottom sweep:
// m(x) = q(x) − Σ_{y > x} m(y). The result is normalized.
//
// Complexity: O(N²) time in the worst case, O(N) memory; each residual
// subtracts the masses already recovered.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate, ErrNegativeResidual,
// assignment.ErrZeroWeight.
func CommonalityToMass[X lattice.Element[X]](l lattice.IterableLattice[X], q *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, q); err != nil {
		return nil, err
	}
	elems, err := l.TopToBottom()
	if err != nil {
		return nil, err
	}
	entries, err := inverse(elems, weigh(q, elems), l.UnsafeImpliesJoin)
	if err != nil {
		return nil, err
	}

	return collect[X](l, len(elems), entries)
}
