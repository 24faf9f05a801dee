// SPDX-License-Identifier: MIT

package fusion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// ErrBadReliability indicates a discount factor outside [0, 1].
var ErrBadReliability = errors.New("fusion: reliability must lie in [0, 1]")

// Discount weakens a by the reliability alpha of its source:
//
//	m'(x) = α·m(x)   for x ≠ ⊤
//	m'(⊤) = α·m(⊤) + (1 − α)
//
// alpha = 1 returns a copy of a; alpha = 0 returns the vacuous assignment.
func Discount[X lattice.Element[X]](l lattice.Lattice[X], a *assignment.Assignment[X], alpha float64) (*assignment.Assignment[X], error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("Discount(%v): %w", alpha, ErrBadReliability)
	}
	if a.Hash() != l.Hash() {
		return nil, fmt.Errorf("Discount: %w", assignment.ErrHashMismatch)
	}

	n := a.Len() + 1
	b := assignment.NewBuilder[X](l.Hash(), n, n)
	for _, e := range a.Entries() {
		if _, err := b.UnsafePush(e.Element, alpha*e.Weight); err != nil {
			return nil, err
		}
	}
	if _, err := b.UnsafePush(l.Top(), 1-alpha); err != nil {
		return nil, err
	}

	return b.Freeze(), nil
}
