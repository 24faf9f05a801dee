// SPDX-License-Identifier: MIT

package belief

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// Sentinel errors for transform lookup.
var (
	// ErrUnknownTransform indicates a name Lookup does not know.
	ErrUnknownTransform = errors.New("belief: unknown transform")

	// ErrNotComplemented indicates a transform that needs a complement on a
	// lattice that has none.
	ErrNotComplemented = errors.New("belief: lattice is not complemented")
)

// Transform is any conversion of this package bound to a full frame.
type Transform[X lattice.Element[X]] func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error)

// Transform names accepted by Lookup.
const (
	NameMassToCommonality          = "mass-to-commonality"
	NameCommonalityToMass          = "commonality-to-mass"
	NameMassToImplicability        = "mass-to-implicability"
	NameImplicabilityToMass        = "implicability-to-mass"
	NameMassToCredibility          = "mass-to-credibility"
	NameCredibilityToMass          = "credibility-to-mass"
	NameImplicabilityToCredibility = "implicability-to-credibility"
	NameCredibilityToImplicability = "credibility-to-implicability"
	NameMassToPlausibility         = "mass-to-plausibility"
	NamePlausibilityToMass         = "plausibility-to-mass"
	NameMassToPignistic            = "mass-to-pignistic"
)

func transforms[X lattice.Element[X]]() map[string]Transform[X] {
	return map[string]Transform[X]{
		NameMassToCommonality: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return MassToCommonality[X](l, a)
		},
		NameCommonalityToMass: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return CommonalityToMass[X](l, a)
		},
		NameMassToImplicability: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return MassToImplicability[X](l, a)
		},
		NameImplicabilityToMass: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return ImplicabilityToMass[X](l, a)
		},
		NameMassToCredibility: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return MassToCredibility[X](l, a)
		},
		NameCredibilityToMass: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return CredibilityToMass[X](l, a)
		},
		NameImplicabilityToCredibility: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return ImplicabilityToCredibility[X](l, a)
		},
		NameCredibilityToImplicability: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return CredibilityToImplicability[X](l, a)
		},
		NameMassToPlausibility: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return MassToPlausibility[X](l, a)
		},
		NamePlausibilityToMass: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			c, ok := l.(ComplementedIterable[X])
			if !ok {
				return nil, ErrNotComplemented
			}
			return PlausibilityToMass[X](c, a)
		},
		NameMassToPignistic: func(l lattice.Frame[X], a *assignment.Assignment[X]) (*assignment.Assignment[X], error) {
			return MassToPignistic[X](l, a)
		},
	}
}

// Lookup returns the transform registered under name.
func Lookup[X lattice.Element[X]](name string) (Transform[X], error) {
	t, ok := transforms[X]()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	return t, nil
}

// Names lists the registered transform names in lexical order.
func Names() []string {
	names := []string{
		NameMassToCommonality, NameCommonalityToMass,
		NameMassToImplicability, NameImplicabilityToMass,
		NameMassToCredibility, NameCredibilityToMass,
		NameImplicabilityToCredibility, NameCredibilityToImplicability,
		NameMassToPlausibility, NamePlausibilityToMass,
		NameMassToPignistic,
	}
	sort.Strings(names)

	return names
}
