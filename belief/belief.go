// SPDX-License-Identifier: MIT
// Shared machinery of the transforms.
// forward sums focal weights per lattice element; inverse peels residuals
// off an ordered enumeration and reports ErrNegativeResidual below −Epsilon.

package belief

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// Sentinel errors for transforms.
var (
	// ErrHashMismatch indicates an assignment built over another lattice.
	ErrHashMismatch = errors.New("belief: mismatching lattice hash")

	// ErrCredibilityOverflow indicates credibility values whose recovered
	// mass exceeds 1.
	ErrCredibilityOverflow = errors.New("belief: credibility mass exceeds 1")

	// ErrNegativeResidual indicates an inverse transform produced a mass
	// below −Epsilon: the input was not a valid representation.
	ErrNegativeResidual = errors.New("belief: negative residual mass")
)

// check verifies that a was built over l.
func check[X lattice.Element[X]](l lattice.Lattice[X], a *assignment.Assignment[X]) error {
	if a.Hash() != l.Hash() {
		return ErrHashMismatch
	}

	return nil
}

// output returns a builder sized for n results with doubled headroom.
func output[X lattice.Element[X]](l lattice.Lattice[X], n int) *assignment.Builder[X] {
	return assignment.NewBuilder[X](l.Hash(), 2*n, 2*n)
}

// put stores v for e, dropping it at or below Epsilon.
func put[X lattice.Element[X]](b *assignment.Builder[X], e lattice.SafeElement[X], v float64) error {
	if v < -assignment.Epsilon {
		return fmt.Errorf("%v: %w", v, ErrNegativeResidual)
	}
	if v <= assignment.Epsilon {
		return nil
	}
	_, err := b.UnsafePush(e, v)

	return err
}

// weigh collects w(e) for the elements of the enumeration in order.
func weigh[X lattice.Element[X]](a *assignment.Assignment[X], elems []lattice.SafeElement[X]) []float64 {
	out := make([]float64, len(elems))
	for i, e := range elems {
		out[i] = a.Weight(e)
	}

	return out
}

// forward computes, for every element x of elems, the sum of the weights of
// the focal elements y of a with related(x, y).
//
// Complexity: O(N·F) calls to related.
// Errors: those of Builder.UnsafePush.
func forward[X lattice.Element[X]](l lattice.Lattice[X], a *assignment.Assignment[X], elems []lattice.SafeElement[X], related func(x, y lattice.SafeElement[X]) bool) (*assignment.Assignment[X], error) {
	focal := a.Entries()
	b := output[X](l, len(elems))
	for _, x := range elems {
		var sum float64
		for _, f := range focal {
			if related(x, f.Element) {
				sum += f.Weight
			}
		}
		if err := put(b, x, sum); err != nil {
			return nil, err
		}
	}

	return b.Freeze(), nil
}

// inverse recovers mass from sums over an order. ordered lists the elements
// so that every y with related(x, y), y ≠ x, comes before x; values holds
// the sum for each of them.
//
// Complexity: O(N·K) calls to related, K ≤ N being the recovered focal count.
// Errors: ErrNegativeResidual when a residual falls below −Epsilon.
func inverse[X lattice.Element[X]](ordered []lattice.SafeElement[X], values []float64, related func(x, y lattice.SafeElement[X]) bool) ([]assignment.Entry[X], error) {
	done := make([]assignment.Entry[X], 0, len(ordered))
	for i, x := range ordered {
		m := values[i]
		for _, d := range done {
			if related(x, d.Element) {
				m -= d.Weight
			}
		}
		if m < -assignment.Epsilon {
			return nil, fmt.Errorf("inverse at %v: %v: %w", x.Code(), m, ErrNegativeResidual)
		}
		if m > assignment.Epsilon {
			done = append(done, assignment.Entry[X]{Element: x, Weight: m})
		}
	}

	return done, nil
}

// collect freezes entries into a normalized assignment.
func collect[X lattice.Element[X]](l lattice.Lattice[X], n int, entries []assignment.Entry[X]) (*assignment.Assignment[X], error) {
	b := output[X](l, n)
	for _, e := range entries {
		if err := put(b, e.Element, e.Weight); err != nil {
			return nil, err
		}
	}
	if err := b.Normalize(); err != nil {
		return nil, err
	}

	return b.Freeze(), nil
}
