// SPDX-License-Identifier: MIT

package belief

import (
	"fmt"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// MassToImplicability returns b(x) = Σ_{y ≤ x} m(y) for every element x.
//
// Complexity: O(N·F) time, O(N) memory for N lattice elements and F focal
// elements of the input.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate.
func MassToImplicability[X lattice.Element[X]](l lattice.IterableLattice[X], m *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, m); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}

	return forward[X](l, m, elems, l.UnsafeImpliedJoin)
}

// ImplicabilityToMass inverts MassToImplicability with a bottom to top
// sweep: m(x) = b(x) − Σ_{y < x} m(y). The result is normalized.
//
// Complexity: O(N²) time in the worst case, O(N) memory; each residual
// subtracts the masses already recovered.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate, ErrNegativeResidual,
// assignment.ErrZeroWeight.
func ImplicabilityToMass[X lattice.Element[X]](l lattice.IterableLattice[X], b *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, b); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}
	entries, err := inverse(elems, weigh(b, elems), l.UnsafeImpliedJoin)
	if err != nil {
		return nil, err
	}

	return collect[X](l, len(elems), entries)
}

// MassToCredibility returns bel(x) = Σ_{⊥ < y ≤ x} m(y) for every element x.
//
// Complexity: O(N·F) time, O(N) memory for N lattice elements and F focal
// elements of the input.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate.
func MassToCredibility[X lattice.Element[X]](l lattice.IterableLattice[X], m *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, m); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}

	return forward[X](l, m, elems, func(x, y lattice.SafeElement[X]) bool {
		return !l.UnsafeIsBottom(y) && l.UnsafeImpliedJoin(x, y)
	})
}

// CredibilityToMass inverts MassToCredibility with a bottom to top sweep
// that skips bottom. The mass left over, 1 − Σ m, is assigned to bottom.
//
// Complexity: O(N²) time in the worst case, O(N) memory; each residual
// subtracts the masses already recovered.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate, ErrNegativeResidual,
// ErrCredibilityOverflow when the recovered mass exceeds 1.
func CredibilityToMass[X lattice.Element[X]](l lattice.IterableLattice[X], bel *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, bel); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}
	bottom := elems[0]
	elems = elems[1:]

	entries, err := inverse(elems, weigh(bel, elems), l.UnsafeImpliedJoin)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, e := range entries {
		sum += e.Weight
	}
	if sum > 1+assignment.Epsilon {
		return nil, fmt.Errorf("CredibilityToMass: Σ = %v: %w", sum, ErrCredibilityOverflow)
	}

	b := output[X](l, len(elems)+1)
	for _, e := range entries {
		if err := put(b, e.Element, e.Weight); err != nil {
			return nil, err
		}
	}
	if err := put(b, bottom, max(1-sum, 0)); err != nil {
		return nil, err
	}

	return b.Freeze(), nil
}

// ImplicabilityToCredibility subtracts b(⊥) from every value.
//
// Complexity: O(F) for the F focal values of b.
//
// Errors: ErrHashMismatch, assignment.ErrBadWeight for values below b(⊥).
func ImplicabilityToCredibility[X lattice.Element[X]](l lattice.Lattice[X], b *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, b); err != nil {
		return nil, err
	}
	shift := b.Weight(l.Bottom())
	out := b.Builder(2*b.Len(), 2*b.Len())
	if err := out.NegShift(shift); err != nil {
		return nil, err
	}

	return out.Freeze(), nil
}

// CredibilityToImplicability adds the bottom mass 1 − bel(⊤) to every
// element in one pass over the enumeration.
//
// Complexity: O(N) for N lattice elements.
//
// Errors: ErrHashMismatch, lattice.ErrTooLargeToIterate,
// ErrCredibilityOverflow when bel(⊤) exceeds 1.
func CredibilityToImplicability[X lattice.Element[X]](l lattice.IterableLattice[X], bel *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, bel); err != nil {
		return nil, err
	}
	elems, err := l.BottomToTop()
	if err != nil {
		return nil, err
	}
	shift := 1 - bel.Weight(l.Top())
	if shift < -assignment.Epsilon {
		return nil, fmt.Errorf("CredibilityToImplicability: bel(⊤) = %v: %w", 1-shift, ErrCredibilityOverflow)
	}
	shift = max(shift, 0)

	out := output[X](l, len(elems))
	for _, x := range elems {
		if err := put(out, x, bel.Weight(x)+shift); err != nil {
			return nil, err
		}
	}

	return out.Freeze(), nil
}
