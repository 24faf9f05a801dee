// SPDX-License-Identifier: MIT

package fusion

import (
	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// Dempster puts a combination's mass on the meet of its elements and
// discards it when the meet is bottom. Together with the engine's
// normalization this is Dempster's rule.
func Dempster[X lattice.Element[X]]() Referee[X] {
	return RefereeFunc[X](func(l lattice.Lattice[X], _ []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error) {
		m := meetAll(l, chosen)
		if l.UnsafeIsBottom(m) {
			return nil, nil
		}

		return []assignment.Entry[X]{{Element: m, Weight: 1}}, nil
	})
}

// Conjunctive puts a combination's mass on the meet of its elements, bottom
// included, so the result carries its conflict on bottom.
func Conjunctive[X lattice.Element[X]]() Referee[X] {
	return RefereeFunc[X](func(l lattice.Lattice[X], _ []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error) {
		return []assignment.Entry[X]{{Element: meetAll(l, chosen), Weight: 1}}, nil
	})
}

// Disjunctive puts a combination's mass on the join of its elements.
func Disjunctive[X lattice.Element[X]]() Referee[X] {
	return RefereeFunc[X](func(l lattice.Lattice[X], _ []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error) {
		j := l.Bottom()
		for _, e := range chosen {
			j = l.UnsafeJoin(j, e)
		}

		return []assignment.Entry[X]{{Element: j, Weight: 1}}, nil
	})
}

// PCR6 is the proportional conflict redistribution rule no. 6. A combination
// whose meet is not bottom goes to the meet. Otherwise its mass is split
// among the chosen elements in proportion to the weight each source gave to
// its choice; an element chosen by several sources collects every share.
func PCR6[X lattice.Element[X]]() Referee[X] {
	return RefereeFunc[X](func(l lattice.Lattice[X], sources []*assignment.Assignment[X], chosen []lattice.SafeElement[X]) ([]assignment.Entry[X], error) {
		m := meetAll(l, chosen)
		if !l.UnsafeIsBottom(m) {
			return []assignment.Entry[X]{{Element: m, Weight: 1}}, nil
		}

		var total float64
		weights := make([]float64, len(chosen))
		for i, e := range chosen {
			weights[i] = sources[i].Weight(e)
			total += weights[i]
		}
		if total <= 0 {
			return nil, nil
		}

		out := make([]assignment.Entry[X], 0, len(chosen))
		for i, e := range chosen {
			share := weights[i] / total
			merged := false
			for k := range out {
				if out[k].Element == e {
					out[k].Weight += share
					merged = true
					break
				}
			}
			if !merged {
				out = append(out, assignment.Entry[X]{Element: e, Weight: share})
			}
		}

		return out, nil
	})
}

func meetAll[X lattice.Element[X]](l lattice.Lattice[X], chosen []lattice.SafeElement[X]) lattice.SafeElement[X] {
	m := l.Top()
	for _, e := range chosen {
		m = l.UnsafeMeet(m, e)
	}

	return m
}
