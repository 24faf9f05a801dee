// SPDX-License-Identifier: MIT

// Package latticetest provides reusable property checks for lattice
// implementations: algebraic laws of Meet/Join, complement laws and the
// monotonicity of enumeration orders. Checks report through testify and
// are meant to be called from package tests.
package latticetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evidence/lattice"
)

// CheckLaws verifies, over every pair and triple of elems:
// commutativity, associativity and idempotence of Meet and Join,
// absorption, bottom/top identities and the agreement of the four
// inclusion tests.
//
// Complexity: O(len(elems)^3) lattice operations.
func CheckLaws[X lattice.Element[X]](t testing.TB, l lattice.Lattice[X], elems []lattice.SafeElement[X]) {
	t.Helper()
	bottom, top := l.Bottom(), l.Top()

	for _, a := range elems {
		m, err := l.Meet(a, a)
		require.NoError(t, err)
		assert.Equal(t, a, m, "meet idempotence")
		j, err := l.Join(a, a)
		require.NoError(t, err)
		assert.Equal(t, a, j, "join idempotence")

		assert.Equal(t, bottom, l.UnsafeMeet(a, bottom), "a ∧ ⊥ = ⊥")
		assert.Equal(t, a, l.UnsafeJoin(a, bottom), "a ∨ ⊥ = a")
		assert.Equal(t, a, l.UnsafeMeet(a, top), "a ∧ ⊤ = a")
		assert.Equal(t, top, l.UnsafeJoin(a, top), "a ∨ ⊤ = ⊤")

		for _, b := range elems {
			assert.Equal(t, l.UnsafeMeet(a, b), l.UnsafeMeet(b, a), "meet commutativity")
			assert.Equal(t, l.UnsafeJoin(a, b), l.UnsafeJoin(b, a), "join commutativity")
			assert.Equal(t, a, l.UnsafeMeet(a, l.UnsafeJoin(a, b)), "absorption a ∧ (a ∨ b)")
			assert.Equal(t, a, l.UnsafeJoin(a, l.UnsafeMeet(a, b)), "absorption a ∨ (a ∧ b)")

			le := l.UnsafeImpliesJoin(a, b)
			assert.Equal(t, le, l.UnsafeImpliesMeet(a, b), "implies_join ⇔ implies_meet")
			assert.Equal(t, le, l.UnsafeImpliedJoin(b, a), "implies_join(a,b) ⇔ implied_join(b,a)")
			assert.Equal(t, le, l.UnsafeImpliedMeet(b, a), "implies_join(a,b) ⇔ implied_meet(b,a)")

			for _, c := range elems {
				assert.Equal(t,
					l.UnsafeMeet(l.UnsafeMeet(a, b), c),
					l.UnsafeMeet(a, l.UnsafeMeet(b, c)), "meet associativity")
				assert.Equal(t,
					l.UnsafeJoin(l.UnsafeJoin(a, b), c),
					l.UnsafeJoin(a, l.UnsafeJoin(b, c)), "join associativity")
			}
		}
	}
}

// CheckComplement verifies involution and De Morgan duality of Not.
func CheckComplement[X lattice.Element[X]](t testing.TB, l lattice.ComplementedLattice[X], elems []lattice.SafeElement[X]) {
	t.Helper()
	for _, a := range elems {
		na, err := l.Not(a)
		require.NoError(t, err)
		nna, err := l.Not(na)
		require.NoError(t, err)
		assert.Equal(t, a, nna, "involution")
		assert.True(t, l.UnsafeIsBottom(l.UnsafeMeet(a, na)), "a ∧ ¬a = ⊥")
		assert.True(t, l.UnsafeIsTop(l.UnsafeJoin(a, na)), "a ∨ ¬a = ⊤")

		for _, b := range elems {
			assert.Equal(t,
				l.UnsafeNot(l.UnsafeMeet(a, b)),
				l.UnsafeJoin(l.UnsafeNot(a), l.UnsafeNot(b)), "¬(a ∧ b) = ¬a ∨ ¬b")
			assert.Equal(t,
				l.UnsafeNot(l.UnsafeJoin(a, b)),
				l.UnsafeMeet(l.UnsafeNot(a), l.UnsafeNot(b)), "¬(a ∨ b) = ¬a ∧ ¬b")
		}
	}
}

// CheckEnumeration verifies that BottomToTop lists every element exactly
// once, starts at bottom, ends at top, never places an element before one of
// its strict lower bounds, and that TopToBottom is its reverse.
func CheckEnumeration[X lattice.Element[X]](t testing.TB, l lattice.IterableLattice[X]) {
	t.Helper()
	up, err := l.BottomToTop()
	require.NoError(t, err)
	down, err := l.TopToBottom()
	require.NoError(t, err)
	require.Len(t, down, len(up))
	require.NotEmpty(t, up)

	assert.Equal(t, l.Bottom(), up[0], "enumeration starts at bottom")
	assert.Equal(t, l.Top(), up[len(up)-1], "enumeration ends at top")

	seen := make(map[X]struct{}, len(up))
	for i, e := range up {
		_, dup := seen[e.Code()]
		assert.False(t, dup, "element listed twice")
		seen[e.Code()] = struct{}{}
		assert.True(t, l.Contains(e.Code()))
		assert.Equal(t, e, down[len(down)-1-i], "TopToBottom reverses BottomToTop")
		for _, later := range up[i+1:] {
			if later != e {
				assert.False(t, l.UnsafeImpliesJoin(later, e), "strict lower bound listed after its upper bound")
			}
		}
	}
}
