// SPDX-License-Identifier: MIT

// Package lattice defines the algebraic contract every frame of discernment
// satisfies, the hash-tagged SafeElement wrapper, and the shared checked /
// unchecked operation set built on top of a concrete Algebra.
//
// A lattice is built once and then only read. Every element handed out by a
// lattice carries the lattice Hash; operations taking elements verify that
// hash before touching the code:
//
//	a, _ := ps.Parse("A|B")
//	b, _ := ps.Parse("B|C")
//	m, err := ps.Meet(a, b) // "B"; err is ErrEntriesNotInLattice on foreign operands
//
// Hot loops that already know where their operands come from use the Unsafe*
// siblings, which skip the hash comparison. The caller then owns provenance.
//
// Capabilities are expressed as separate interfaces layered on Lattice:
//
//	ComplementedLattice  Not, with involution and De Morgan duality.
//	IterableLattice      monotone enumeration bottom→top and top→bottom,
//	                     bounded by an iteration ceiling (DefaultIterationLimit).
//	LatticeWithLeaves    generating atoms with their prior weights.
//
// Algorithms needing a capability take the narrow interface, or type-assert
// at the call site.
//
// Text syntax: elements print as "|"-joined labels in ascending code order,
// with BottomGlyph (⊥) and TopGlyph (⊤) reserved.
package lattice
