// SPDX-License-Identifier: MIT

package assignment

import (
	"slices"

	"github.com/katalvlaran/evidence/lattice"
)

// Assignment is an immutable weighted set of elements of one lattice,
// produced by Builder.Freeze. It is safe for concurrent reads.
type Assignment[X lattice.Element[X]] struct {
	elements map[X]float64
	hash     lattice.Hash
}

// Hash returns the hash of the lattice the elements belong to.
func (a *Assignment[X]) Hash() lattice.Hash { return a.hash }

// Len returns the number of focal elements.
func (a *Assignment[X]) Len() int { return len(a.elements) }

// Weight returns the weight of e, 0 when e is absent or foreign.
func (a *Assignment[X]) Weight(e lattice.SafeElement[X]) float64 {
	if e.Hash() != a.hash {
		return 0
	}

	return a.elements[e.Code()]
}

// Entries returns the focal elements in ascending code order.
func (a *Assignment[X]) Entries() []Entry[X] {
	out := make([]Entry[X], 0, len(a.elements))
	for code, w := range a.elements {
		out = append(out, Entry[X]{Element: lattice.Unchecked(code, a.hash), Weight: w})
	}
	slices.SortFunc(out, func(x, y Entry[X]) int { return x.Element.Cmp(y.Element) })

	return out
}

// CumulWeight returns the sum of the weights in code order.
func (a *Assignment[X]) CumulWeight() float64 {
	var sum float64
	for _, e := range a.Entries() {
		sum += e.Weight
	}

	return sum
}

// Builder copies the assignment into a new builder with the given thresholds.
func (a *Assignment[X]) Builder(lengthMid, lengthMax int) *Builder[X] {
	b := NewBuilder[X](a.hash, lengthMid, lengthMax)
	for _, e := range a.Entries() {
		b.add(e.Element, e.Weight)
	}

	return b
}
