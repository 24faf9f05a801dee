// SPDX-License-Identifier: MIT

package powerset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/katalvlaran/evidence/lattice"
	"github.com/katalvlaran/evidence/lattice/latticetest"
	"github.com/katalvlaran/evidence/powerset"
)

// mustABCD builds the 4-leaf powerset used across these tests.
func mustABCD(t *testing.T, opts ...powerset.Option) *powerset.Powerset {
	t.Helper()
	p, err := powerset.FromLabels([]string{"A", "B", "C", "D"}, opts...)
	require.NoError(t, err)

	return p
}

// TestFromLabels_Validation checks the constructor sentinels.
func TestFromLabels_Validation(t *testing.T) {
	_, err := powerset.FromLabels(nil)
	assert.ErrorIs(t, err, powerset.ErrNoLeaves)

	for _, n := range []int{0, -1, -128} {
		_, err = powerset.New(n)
		assert.ErrorIs(t, err, powerset.ErrNoLeaves, "New(%d)", n)
	}

	_, err = powerset.New(129)
	assert.ErrorIs(t, err, powerset.ErrTooManyLeaves)
	assert.Contains(t, err.Error(), "number of leaves cannot exceed 128")

	_, err = powerset.FromLabels([]string{"A", "B"}, powerset.WithPriors([]float64{1}))
	assert.ErrorIs(t, err, powerset.ErrPriorsMismatch)

	assert.Panics(t, func() { powerset.WithPriors([]float64{-1}) })
	assert.Panics(t, func() { powerset.WithPriors([]float64{math.NaN()}) })
	assert.Panics(t, func() { powerset.WithIterationLimit(0) })
}

// TestPowerset_Laws runs the algebraic property checks over all 16 subsets.
func TestPowerset_Laws(t *testing.T) {
	p := mustABCD(t)
	all, err := p.BottomToTop()
	require.NoError(t, err)
	require.Len(t, all, 16)

	latticetest.CheckLaws[powerset.Code](t, p, all)
	latticetest.CheckComplement[powerset.Code](t, p, all)
	latticetest.CheckEnumeration[powerset.Code](t, p)
}

// TestPowerset_BitAlgebra pins meet/join/not to AND/OR/XOR.
func TestPowerset_BitAlgebra(t *testing.T) {
	p := mustABCD(t)
	ab, err := p.Parse("A|B")
	require.NoError(t, err)
	bc, err := p.Parse("B|C")
	require.NoError(t, err)

	m, err := p.Meet(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(0b0010), m.Code())

	j, err := p.Join(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(0b0111), j.Code())

	n, err := p.Not(ab)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(0b1100), n.Code())

	disjoint, err := p.Disjoint(ab, n)
	require.NoError(t, err)
	assert.True(t, disjoint)
	cover, err := p.Cover(ab, n)
	require.NoError(t, err)
	assert.True(t, cover)
}

// TestPowerset_Text covers the element text syntax in both directions.
func TestPowerset_Text(t *testing.T) {
	p := mustABCD(t)

	e, err := p.Parse(" C | A ")
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(0b0101), e.Code())
	s, err := p.Format(e)
	require.NoError(t, err)
	assert.Equal(t, "A|C", s, "labels print in ascending code order")

	bot, err := p.Parse(lattice.BottomGlyph)
	require.NoError(t, err)
	assert.Equal(t, p.Bottom(), bot)
	top, err := p.Parse(lattice.TopGlyph)
	require.NoError(t, err)
	assert.Equal(t, p.Top(), top)

	s, _ = p.Format(p.Bottom())
	assert.Equal(t, "⊥", s)
	s, _ = p.Format(p.Top())
	assert.Equal(t, "⊤", s)

	_, err = p.Parse("A|Z")
	assert.ErrorIs(t, err, lattice.ErrUnknownLabel)
	_, err = p.Parse(" | ")
	assert.ErrorIs(t, err, lattice.ErrEmptyText)
}

// TestPowerset_HashTagging verifies hash determinism and foreign-operand rejection.
func TestPowerset_HashTagging(t *testing.T) {
	p1 := mustABCD(t)
	p2 := mustABCD(t)
	assert.Equal(t, p1.Hash(), p2.Hash(), "identical structure ⇒ identical hash")

	other, err := powerset.FromLabels([]string{"A", "B", "C", "E"})
	require.NoError(t, err)
	assert.NotEqual(t, p1.Hash(), other.Hash())

	weighted := mustABCD(t, powerset.WithPriors([]float64{1, 2, 3, 4}))
	assert.NotEqual(t, p1.Hash(), weighted.Hash(), "priors are structural")

	a, _ := p1.Parse("A")
	foreign, _ := other.Parse("A")

	_, err = p1.Meet(a, foreign)
	assert.ErrorIs(t, err, lattice.ErrEntriesNotInLattice)
	_, err = p1.IsBottom(foreign)
	assert.ErrorIs(t, err, lattice.ErrElementNotInLattice)
	_, err = p1.Not(foreign)
	assert.ErrorIs(t, err, lattice.ErrElementNotInLattice)
	_, err = p1.Format(foreign)
	assert.ErrorIs(t, err, lattice.ErrElementNotInLattice)

	// Elements of a structurally identical lattice are interchangeable.
	same, _ := p2.Parse("A")
	_, err = p1.Meet(a, same)
	assert.NoError(t, err)
}

// TestPowerset_CheckSafe rejects codes with bits beyond the leaf count.
func TestPowerset_CheckSafe(t *testing.T) {
	p := mustABCD(t)
	e, err := p.CheckSafe(uint128.From64(0b1111))
	require.NoError(t, err)
	assert.Equal(t, p.Top(), e)

	_, err = p.CheckSafe(uint128.From64(0b10000))
	assert.ErrorIs(t, err, lattice.ErrNotInLattice)
}

// TestPowerset_IterationCeiling checks the enumeration threshold.
func TestPowerset_IterationCeiling(t *testing.T) {
	p10, err := powerset.New(10)
	require.NoError(t, err)
	all, err := p10.BottomToTop()
	require.NoError(t, err)
	assert.Len(t, all, 1024)

	// The ceiling is inclusive: 1024 elements need a limit of at least 1024.
	p10, err = powerset.New(10, powerset.WithIterationLimit(1023))
	require.NoError(t, err)
	_, err = p10.BottomToTop()
	assert.ErrorIs(t, err, lattice.ErrTooLargeToIterate)

	p11, err := powerset.New(11)
	require.NoError(t, err)
	_, err = p11.BottomToTop()
	assert.ErrorIs(t, err, lattice.ErrTooLargeToIterate)
	_, err = p11.TopToBottom()
	assert.ErrorIs(t, err, lattice.ErrTooLargeToIterate)

	p11, err = powerset.New(11, powerset.WithIterationLimit(4096))
	require.NoError(t, err)
	all, err = p11.TopToBottom()
	require.NoError(t, err)
	assert.Len(t, all, 2048)
	assert.Equal(t, p11.Top(), all[0])
}

// TestPowerset_Full128 exercises the widest code.
func TestPowerset_Full128(t *testing.T) {
	p, err := powerset.New(128)
	require.NoError(t, err)
	assert.Equal(t, uint128.Max, p.Top().Code())

	last, err := p.Leaf(127)
	require.NoError(t, err)
	assert.Equal(t, uint128.New(0, 1<<63), last.Code())
	s, _ := p.Format(last)
	assert.Equal(t, "L127", s)

	n := p.UnsafeNot(last)
	assert.Equal(t, uint128.New(math.MaxUint64, 1<<63-1), n.Code())
	assert.True(t, p.UnsafeCover(last, n))

	_, err = p.BottomToTop()
	assert.ErrorIs(t, err, lattice.ErrTooLargeToIterate)
}

// TestPowerset_Leaves checks the atoms and their priors.
func TestPowerset_Leaves(t *testing.T) {
	p := mustABCD(t, powerset.WithPriors([]float64{0.1, 0.2, 0.3, 0.4}))
	leaves := p.Leaves()
	require.Len(t, leaves, 4)
	weighted := p.WeightedLeaves()
	for i := range leaves {
		assert.Equal(t, uint128.From64(1).Lsh(uint(i)), leaves[i].Code())
		assert.Equal(t, leaves[i], weighted[i].Element)
	}
	assert.InDelta(t, 0.3, weighted[2].Weight, 1e-15)

	_, err := p.Leaf(4)
	assert.ErrorIs(t, err, lattice.ErrLeafOutOfRange)
	_, err = p.Leaf(-1)
	assert.ErrorIs(t, err, lattice.ErrLeafOutOfRange)
}

// TestPowerset_DuplicateLabels resolves a repeated label to its first leaf.
func TestPowerset_DuplicateLabels(t *testing.T) {
	p, err := powerset.FromLabels([]string{"X", "X", "Y"})
	require.NoError(t, err)
	e, err := p.Parse("X")
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(0b001), e.Code())
	s, _ := p.Format(lattice.Unchecked(uint128.From64(0b011), p.Hash()))
	assert.Equal(t, "X|X", s)
}
