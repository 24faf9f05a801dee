// SPDX-License-Identifier: MIT

package lattice

// Reserved glyphs of the element text syntax.
const (
	BottomGlyph = "⊥"
	TopGlyph    = "⊤"
	Separator   = "|"
)

// DefaultIterationLimit is the default element-count ceiling for enumeration.
// The ceiling is inclusive: a lattice of exactly limit elements enumerates,
// one of limit+1 answers ErrTooLargeToIterate.
const DefaultIterationLimit = 1024

// Algebra is the unchecked code-level algebra a concrete lattice supplies.
// Meet and Join must be associative and commutative; this is a contract of
// the implementation and is not checked at run time.
type Algebra[X Element[X]] interface {
	Bottom() X
	Top() X
	Contains(code X) bool
	Meet(a, b X) X
	Join(a, b X) X
	Format(code X) string
	Parse(text string) (X, error)
}

// Lattice is the contract every frame of discernment satisfies.
//
// Safe methods verify that every operand carries Hash() and fail with
// ErrElementNotInLattice / ErrEntriesNotInLattice otherwise. Unsafe methods
// skip that verification.
type Lattice[X Element[X]] interface {
	Hash() Hash
	Bottom() SafeElement[X]
	Top() SafeElement[X]
	Contains(code X) bool
	CheckSafe(code X) (SafeElement[X], error)

	Meet(a, b SafeElement[X]) (SafeElement[X], error)
	Join(a, b SafeElement[X]) (SafeElement[X], error)
	IsBottom(a SafeElement[X]) (bool, error)
	IsTop(a SafeElement[X]) (bool, error)
	Cover(a, b SafeElement[X]) (bool, error)
	Disjoint(a, b SafeElement[X]) (bool, error)
	ImpliesJoin(a, b SafeElement[X]) (bool, error)
	ImpliedJoin(a, b SafeElement[X]) (bool, error)
	ImpliesMeet(a, b SafeElement[X]) (bool, error)
	ImpliedMeet(a, b SafeElement[X]) (bool, error)

	UnsafeMeet(a, b SafeElement[X]) SafeElement[X]
	UnsafeJoin(a, b SafeElement[X]) SafeElement[X]
	UnsafeIsBottom(a SafeElement[X]) bool
	UnsafeIsTop(a SafeElement[X]) bool
	UnsafeCover(a, b SafeElement[X]) bool
	UnsafeDisjoint(a, b SafeElement[X]) bool
	UnsafeImpliesJoin(a, b SafeElement[X]) bool
	UnsafeImpliedJoin(a, b SafeElement[X]) bool
	UnsafeImpliesMeet(a, b SafeElement[X]) bool
	UnsafeImpliedMeet(a, b SafeElement[X]) bool

	Parse(text string) (SafeElement[X], error)
	Format(a SafeElement[X]) (string, error)
}

// ComplementedLattice adds a complement with
//
//	Not(Not(x)) == x
//	Not(Meet(a, b)) == Join(Not(a), Not(b))
type ComplementedLattice[X Element[X]] interface {
	Lattice[X]
	Not(a SafeElement[X]) (SafeElement[X], error)
	UnsafeNot(a SafeElement[X]) SafeElement[X]
}

// IterableLattice exposes a monotone enumeration of all elements: every
// element appears after all of its strict lower bounds in BottomToTop, and
// the reverse holds for TopToBottom.
type IterableLattice[X Element[X]] interface {
	Lattice[X]
	BottomToTop() ([]SafeElement[X], error)
	TopToBottom() ([]SafeElement[X], error)
}

// LatticeWithLeaves exposes the generating atoms and their prior weights.
type LatticeWithLeaves[X Element[X]] interface {
	Lattice[X]
	Leaves() []SafeElement[X]
	WeightedLeaves() []WeightedLeaf[X]
	Leaf(i int) (SafeElement[X], error)
}

// Frame is the full capability set shared by both concrete lattices.
type Frame[X Element[X]] interface {
	IterableLattice[X]
	Leaves() []SafeElement[X]
	WeightedLeaves() []WeightedLeaf[X]
	Leaf(i int) (SafeElement[X], error)
}
