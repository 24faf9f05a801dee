// SPDX-License-Identifier: MIT

package assignment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
	"github.com/katalvlaran/evidence/powerset"
)

type elem = lattice.SafeElement[powerset.Code]

func abc(t *testing.T) *powerset.Powerset {
	t.Helper()
	p, err := powerset.FromLabels([]string{"A", "B", "C"})
	require.NoError(t, err)

	return p
}

func el(t *testing.T, p *powerset.Powerset, text string) elem {
	t.Helper()
	e, err := p.Parse(text)
	require.NoError(t, err)

	return e
}

// TestNewBuilder_Thresholds checks the floors on lengthMid and lengthMax.
func TestNewBuilder_Thresholds(t *testing.T) {
	p := abc(t)
	mid, hi := assignment.NewBuilder[powerset.Code](p.Hash(), 0, -3).Thresholds()
	assert.Equal(t, 1, mid)
	assert.Equal(t, 1, hi)

	mid, hi = assignment.NewBuilder[powerset.Code](p.Hash(), 8, 4).Thresholds()
	assert.Equal(t, 8, mid)
	assert.Equal(t, 8, hi)
}

// TestBuilder_Push covers the epsilon floor, accumulation and validation.
func TestBuilder_Push(t *testing.T) {
	p := abc(t)
	b := assignment.NewBuilder[powerset.Code](p.Hash(), 4, 8)
	a := el(t, p, "A")

	ok, err := b.Push(a, assignment.Epsilon)
	require.NoError(t, err)
	assert.False(t, ok, "weight at epsilon is dropped")
	ok, err = b.Push(a, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())

	for _, w := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = b.Push(a, w)
		assert.ErrorIs(t, err, assignment.ErrBadWeight, "weight %v", w)
	}
	assert.Equal(t, 0, b.Len())

	ok, err = b.Push(a, 0.25)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = b.Push(a, 0.5)
	require.NoError(t, err)
	w, found := b.Weight(a)
	require.True(t, found)
	assert.InDelta(t, 0.75, w, 1e-15)
	assert.Equal(t, 1, b.Len())
}

// TestBuilder_HashMismatch rejects elements of another lattice.
func TestBuilder_HashMismatch(t *testing.T) {
	p := abc(t)
	other, err := powerset.FromLabels([]string{"X", "Y"})
	require.NoError(t, err)

	b := assignment.NewBuilder[powerset.Code](p.Hash(), 4, 8)
	foreign := el(t, other, "X")
	_, err = b.Push(foreign, 0.5)
	assert.ErrorIs(t, err, assignment.ErrHashMismatch)
	assert.Contains(t, err.Error(), "lattice hash mismatch")

	ok, err := b.UnsafePush(foreign, 0.5)
	require.NoError(t, err)
	assert.True(t, ok, "unsafe push skips the provenance check")
}

// TestBuilder_Remove returns the removed entry once.
func TestBuilder_Remove(t *testing.T) {
	p := abc(t)
	b := assignment.NewBuilder[powerset.Code](p.Hash(), 4, 8)
	a, bc := el(t, p, "A"), el(t, p, "B|C")
	_, _ = b.Push(a, 0.3)
	_, _ = b.Push(bc, 0.7)

	got, ok := b.Remove(a)
	require.True(t, ok)
	assert.Equal(t, a, got.Element)
	assert.InDelta(t, 0.3, got.Weight, 1e-15)
	assert.Equal(t, 1, b.Len())

	_, ok = b.Remove(a)
	assert.False(t, ok)
	assert.Len(t, b.Freeze().Entries(), 1)
}

// TestBuilder_PruneMergesLightest checks which entries are merged.
func TestBuilder_PruneMergesLightest(t *testing.T) {
	p := abc(t)
	b := assignment.NewBuilder[powerset.Code](p.Hash(), 2, 3)
	_, _ = b.Push(el(t, p, "A"), 0.1)
	_, _ = b.Push(el(t, p, "B"), 0.2)
	_, _ = b.Push(el(t, p, "C"), 0.3)

	b.Prune(p.UnsafeJoin)
	assert.Equal(t, 3, b.Len(), "no pruning at lengthMax")

	_, _ = b.Push(el(t, p, "A|B"), 0.4)
	b.Prune(p.UnsafeJoin)
	require.Equal(t, 2, b.Len())

	w, ok := b.Weight(el(t, p, "A|B"))
	require.True(t, ok)
	assert.InDelta(t, 0.7, w, 1e-15, "A and B merged into the existing A|B")
	w, ok = b.Weight(el(t, p, "C"))
	require.True(t, ok)
	assert.InDelta(t, 0.3, w, 1e-15)
}

// TestBuilder_PruneInvariant checks weight preservation and the final size.
func TestBuilder_PruneInvariant(t *testing.T) {
	p := abc(t)
	all, err := p.BottomToTop()
	require.NoError(t, err)

	for _, pruner := range []func(x, y elem) elem{p.UnsafeJoin, p.UnsafeMeet} {
		b := assignment.NewBuilder[powerset.Code](p.Hash(), 3, 5)
		for i, e := range all {
			_, err := b.Push(e, float64(i+1)/36)
			require.NoError(t, err)
		}
		before, err := b.CumulWeight()
		require.NoError(t, err)

		b.Prune(pruner)
		assert.LessOrEqual(t, b.Len(), 3)
		after, err := b.CumulWeight()
		require.NoError(t, err)
		assert.InDelta(t, before, after, 1e-12)
	}
}

// TestBuilder_Map covers scaling, shifting and dropping.
func TestBuilder_Map(t *testing.T) {
	p := abc(t)
	b := assignment.NewBuilder[powerset.Code](p.Hash(), 4, 8)
	a, bb, c := el(t, p, "A"), el(t, p, "B"), el(t, p, "C")
	_, _ = b.Push(a, 0.1)
	_, _ = b.Push(bb, 0.2)
	_, _ = b.Push(c, 0.3)

	require.NoError(t, b.Scale(2))
	w, _ := b.Weight(c)
	assert.InDelta(t, 0.6, w, 1e-15)

	require.NoError(t, b.NegShift(0.2))
	assert.Equal(t, 2, b.Len(), "A shifted to zero is dropped")
	_, ok := b.Weight(a)
	assert.False(t, ok)

	err := b.NegShift(1)
	assert.ErrorIs(t, err, assignment.ErrBadWeight)
	assert.Equal(t, 2, b.Len(), "failed map leaves the builder unchanged")

	err = b.Map(func(float64) float64 { return math.NaN() })
	assert.ErrorIs(t, err, assignment.ErrBadWeight)

	require.NoError(t, b.Map(func(w float64) float64 { return w - w - assignment.Epsilon/2 }))
	assert.Equal(t, 0, b.Len(), "rounding noise below zero is dropped")
}

// TestBuilder_Normalize checks scaling to unit mass and the zero case.
func TestBuilder_Normalize(t *testing.T) {
	p := abc(t)
	b := assignment.NewBuilder[powerset.Code](p.Hash(), 4, 8)
	assert.ErrorIs(t, b.Normalize(), assignment.ErrZeroWeight)

	_, _ = b.Push(el(t, p, "A"), 1)
	_, _ = b.Push(el(t, p, "B"), 3)
	require.NoError(t, b.Normalize())
	sum, err := b.CumulWeight()
	require.NoError(t, err)
	assert.InDelta(t, 1, sum, 1e-15)
	w, _ := b.Weight(el(t, p, "B"))
	assert.InDelta(t, 0.75, w, 1e-15)
}

// TestAssignment_FreezeAndThaw checks the immutable view and its round trip.
func TestAssignment_FreezeAndThaw(t *testing.T) {
	p := abc(t)
	b := assignment.NewBuilder[powerset.Code](p.Hash(), 4, 8)
	_, _ = b.Push(el(t, p, "A|C"), 0.5)
	_, _ = b.Push(el(t, p, "B"), 0.2)
	_, _ = b.Push(el(t, p, "A"), 0.3)

	a := b.Freeze()
	assert.Equal(t, p.Hash(), a.Hash())
	assert.Equal(t, 3, a.Len())
	assert.InDelta(t, 1, a.CumulWeight(), 1e-15)
	assert.InDelta(t, 0.2, a.Weight(el(t, p, "B")), 1e-15)
	assert.Zero(t, a.Weight(el(t, p, "C")))

	entries := a.Entries()
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.Negative(t, entries[i-1].Element.Cmp(entries[i].Element), "entries ascend by code")
	}

	_, _ = b.Push(el(t, p, "C"), 0.4)
	assert.Equal(t, 3, a.Len(), "frozen snapshot is detached from the builder")

	thawed := a.Builder(2, 4)
	assert.Equal(t, 3, thawed.Len())
	assert.Equal(t, a.Entries(), thawed.Freeze().Entries())
}
