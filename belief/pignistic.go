// SPDX-License-Identifier: MIT

package belief

import (
	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// MassToPignistic spreads the mass of every focal element over the leaves it
// covers, in proportion to their priors, and normalizes the result. When the
// covered priors sum to zero the mass is split evenly. Mass on bottom covers
// no leaf and is dropped.
//
// Complexity: O(F·L) time, O(L) memory for F focal elements and L leaves.
//
// Errors: ErrHashMismatch, assignment.ErrZeroWeight when no mass reaches a leaf.
func MassToPignistic[X lattice.Element[X]](l lattice.LatticeWithLeaves[X], m *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
	if err := check[X](l, m); err != nil {
		return nil, err
	}
	leaves := l.WeightedLeaves()
	shares := make([]float64, len(leaves))
	covered := make([]int, 0, len(leaves))

	for _, f := range m.Entries() {
		if l.UnsafeIsBottom(f.Element) {
			continue
		}
		covered = covered[:0]
		var prior float64
		for i, leaf := range leaves {
			if l.UnsafeImpliesJoin(leaf.Element, f.Element) {
				covered = append(covered, i)
				prior += leaf.Weight
			}
		}
		for _, i := range covered {
			if prior > 0 {
				shares[i] += f.Weight * leaves[i].Weight / prior
			} else {
				shares[i] += f.Weight / float64(len(covered))
			}
		}
	}

	b := output[X](l, len(leaves))
	for i, leaf := range leaves {
		if err := put(b, leaf.Element, shares[i]); err != nil {
			return nil, err
		}
	}
	if err := b.Normalize(); err != nil {
		return nil, err
	}

	return b.Freeze(), nil
}
