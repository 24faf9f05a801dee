// SPDX-License-Identifier: MIT

package fusion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evidence/lattice"
)

// ErrUnknownReferee indicates a name RefereeByName does not know.
var ErrUnknownReferee = errors.New("fusion: unknown referee")

// Stock referee names.
const (
	NameDempster    = "dempster"
	NameConjunctive = "conjunctive"
	NameDisjunctive = "disjunctive"
	NamePCR6        = "pcr6"
)

// RefereeNames lists the stock referee names.
var RefereeNames = []string{NameConjunctive, NameDempster, NameDisjunctive, NamePCR6}

// RefereeByName returns the stock referee called name.
func RefereeByName[X lattice.Element[X]](name string) (Referee[X], error) {
	switch name {
	case NameDempster:
		return Dempster[X](), nil
	case NameConjunctive:
		return Conjunctive[X](), nil
	case NameDisjunctive:
		return Disjunctive[X](), nil
	case NamePCR6:
		return PCR6[X](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReferee, name)
	}
}
