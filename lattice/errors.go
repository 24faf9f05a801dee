// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Sentinel errors shared by every lattice implementation.
// Callers branch with errors.Is; implementations wrap with context via %w.
var (
	// ErrElementNotInLattice is returned when a single operand carries a foreign hash.
	ErrElementNotInLattice = errors.New("lattice: element not within lattice")

	// ErrEntriesNotInLattice is returned when one of several operands carries a foreign hash.
	ErrEntriesNotInLattice = errors.New("lattice: entries are not within lattice")

	// ErrNotInLattice is returned by CheckSafe for raw codes the lattice does not contain.
	ErrNotInLattice = errors.New("lattice: not in lattice")

	// ErrTooLargeToIterate is returned by enumeration on lattices above their iteration ceiling.
	ErrTooLargeToIterate = errors.New("lattice: lattice is too large to be iterated")

	// ErrUnknownLabel is returned by Parse for labels the lattice does not know.
	ErrUnknownLabel = errors.New("lattice: unknown label")

	// ErrEmptyText is returned by Parse when no label is given.
	ErrEmptyText = errors.New("lattice: empty element text")

	// ErrLeafOutOfRange is returned by Leaf for an index outside [0, len(leaves)).
	ErrLeafOutOfRange = errors.New("lattice: leaf index out of range")
)
