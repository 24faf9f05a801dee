// SPDX-License-Identifier: MIT

package belief_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/belief"
	"github.com/katalvlaran/evidence/lattice"
	"github.com/katalvlaran/evidence/powerset"
	"github.com/katalvlaran/evidence/taxonomy"
)

type code = powerset.Code

const tolerance = 1e-8

func abc(t *testing.T) *powerset.Powerset {
	t.Helper()
	p, err := powerset.FromLabels([]string{"A", "B", "C"})
	require.NoError(t, err)

	return p
}

func vehicles(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tx, err := taxonomy.New(taxonomy.Node("Object",
		taxonomy.Node("Ground", taxonomy.Leaf("Car", 0.2), taxonomy.Leaf("Truck", 0.15), taxonomy.Leaf("Bike", 0.15)),
		taxonomy.Node("Air", taxonomy.Leaf("Airplane", 0.1), taxonomy.Leaf("UAV", 0.1)),
		taxonomy.Node("Water", taxonomy.Leaf("Ship", 0.1), taxonomy.Leaf("Boat", 0.15)),
		taxonomy.Node("Amphibian", taxonomy.Leaf("Hovercraft", 0.05)),
	))
	require.NoError(t, err)

	return tx
}

func mass[X lattice.Element[X]](t *testing.T, l lattice.Lattice[X], weights map[string]float64) *assignment.Assignment[X] {
	t.Helper()
	b := assignment.NewBuilder[X](l.Hash(), 16, 16)
	for text, w := range weights {
		e, err := l.Parse(text)
		require.NoError(t, err)
		_, err = b.Push(e, w)
		require.NoError(t, err)
	}

	return b.Freeze()
}

// mass1 is the normalized three-leaf reference assignment.
var mass1 = map[string]float64{
	"A": 0.1, "B": 0.15, "C": 0.2,
	"B|C": 0.2, "A|C": 0.1, "A|B": 0.25,
}

// randomMass draws a normalized assignment over a random subset of elems.
func randomMass[X lattice.Element[X]](t *testing.T, rng *rand.Rand, l lattice.Lattice[X], elems []lattice.SafeElement[X], withBottom bool) *assignment.Assignment[X] {
	t.Helper()
	b := assignment.NewBuilder[X](l.Hash(), len(elems), len(elems))
	for _, e := range elems {
		if l.UnsafeIsBottom(e) && !withBottom {
			continue
		}
		if rng.Intn(2) == 0 {
			_, err := b.Push(e, 0.05+rng.Float64())
			require.NoError(t, err)
		}
	}
	_, err := b.Push(l.Top(), 0.05)
	require.NoError(t, err)
	require.NoError(t, b.Normalize())

	return b.Freeze()
}

// assertSame compares two assignments element by element over elems.
func assertSame[X lattice.Element[X]](t *testing.T, want, got *assignment.Assignment[X], elems []lattice.SafeElement[X]) {
	t.Helper()
	for _, e := range elems {
		assert.InDelta(t, want.Weight(e), got.Weight(e), tolerance, "element %v", e.Code())
	}
}

type roundTrip[X lattice.Element[X]] struct {
	name     string
	to, from func(*assignment.Assignment[X]) (*assignment.Assignment[X], error)
}

func roundTrips[X lattice.Element[X]](l lattice.Frame[X]) []roundTrip[X] {
	return []roundTrip[X]{
		{
			"commonality",
			func(m *assignment.Assignment[X]) (*assignment.Assignment[X], error) { return belief.MassToCommonality[X](l, m) },
			func(q *assignment.Assignment[X]) (*assignment.Assignment[X], error) { return belief.CommonalityToMass[X](l, q) },
		},
		{
			"implicability",
			func(m *assignment.Assignment[X]) (*assignment.Assignment[X], error) { return belief.MassToImplicability[X](l, m) },
			func(b *assignment.Assignment[X]) (*assignment.Assignment[X], error) { return belief.ImplicabilityToMass[X](l, b) },
		},
		{
			"credibility",
			func(m *assignment.Assignment[X]) (*assignment.Assignment[X], error) { return belief.MassToCredibility[X](l, m) },
			func(b *assignment.Assignment[X]) (*assignment.Assignment[X], error) { return belief.CredibilityToMass[X](l, b) },
		},
	}
}

// TestCommonality_ThreeLeafScenario pins the reference round trip.
func TestCommonality_ThreeLeafScenario(t *testing.T) {
	p := abc(t)
	m := mass[code](t, p, mass1)
	all, err := p.BottomToTop()
	require.NoError(t, err)

	q, err := belief.MassToCommonality[code](p, m)
	require.NoError(t, err)
	a, _ := p.Parse("A")
	assert.InDelta(t, 0.1+0.1+0.25, q.Weight(a), 1e-12)
	assert.InDelta(t, 1, q.Weight(p.Bottom()), 1e-12)
	assert.Zero(t, q.Weight(p.Top()))

	back, err := belief.CommonalityToMass[code](p, q)
	require.NoError(t, err)
	assertSame[code](t, m, back, all)
	assert.Zero(t, back.Weight(p.Top()))
}

// TestRoundTrips_Powerset covers every invertible pair over random masses.
func TestRoundTrips_Powerset(t *testing.T) {
	p, err := powerset.FromLabels([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	all, err := p.BottomToTop()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	trips := append(roundTrips[code](p), roundTrip[code]{
		"plausibility",
		func(m *assignment.Assignment[code]) (*assignment.Assignment[code], error) {
			return belief.MassToPlausibility[code](p, m)
		},
		func(pl *assignment.Assignment[code]) (*assignment.Assignment[code], error) {
			return belief.PlausibilityToMass[code](p, pl)
		},
	})
	for i := 0; i < 25; i++ {
		m := randomMass[code](t, rng, p, all, i%2 == 0)
		for _, rt := range trips {
			fwd, err := rt.to(m)
			require.NoError(t, err, rt.name)
			back, err := rt.from(fwd)
			require.NoError(t, err, rt.name)
			assertSame[code](t, m, back, all)
		}
	}
}

// TestRoundTrips_Taxonomy runs the order-only transforms on a taxonomy.
func TestRoundTrips_Taxonomy(t *testing.T) {
	tx := vehicles(t)
	all, err := tx.BottomToTop()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 25; i++ {
		m := randomMass[taxonomy.Code](t, rng, tx, all, i%3 == 0)
		for _, rt := range roundTrips[taxonomy.Code](tx) {
			fwd, err := rt.to(m)
			require.NoError(t, err, rt.name)
			back, err := rt.from(fwd)
			require.NoError(t, err, rt.name)
			assertSame[taxonomy.Code](t, m, back, all)
		}
	}
}

// TestShift_MatchesSweep checks the constant-shift conversions against the
// full sweeps.
func TestShift_MatchesSweep(t *testing.T) {
	p, err := powerset.FromLabels([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	all, err := p.BottomToTop()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		m := randomMass[code](t, rng, p, all, true)

		b, err := belief.MassToImplicability[code](p, m)
		require.NoError(t, err)
		bel, err := belief.MassToCredibility[code](p, m)
		require.NoError(t, err)

		shifted, err := belief.ImplicabilityToCredibility[code](p, b)
		require.NoError(t, err)
		assertSame[code](t, bel, shifted, all)

		back, err := belief.CredibilityToImplicability[code](p, shifted)
		require.NoError(t, err)
		assertSame[code](t, b, back, all)
	}
}

// TestCredibility_BottomMass assigns the uncommitted belief to bottom.
func TestCredibility_BottomMass(t *testing.T) {
	p := abc(t)
	m := mass[code](t, p, map[string]float64{"⊥": 0.3, "A": 0.3, "B|C": 0.4})

	bel, err := belief.MassToCredibility[code](p, m)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, bel.Weight(p.Top()), 1e-12)
	assert.Zero(t, bel.Weight(p.Bottom()))

	back, err := belief.CredibilityToMass[code](p, bel)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, back.Weight(p.Bottom()), 1e-12)

	over := mass[code](t, p, map[string]float64{
		"A": 0.8, "B": 0.7, "A|B": 1.5, "A|C": 0.8, "B|C": 0.7, "⊤": 1.5,
	})
	_, err = belief.CredibilityToMass[code](p, over)
	assert.ErrorIs(t, err, belief.ErrCredibilityOverflow)
}

// TestPlausibility_Values spot-checks pl on the reference assignment.
func TestPlausibility_Values(t *testing.T) {
	p := abc(t)
	pl, err := belief.MassToPlausibility[code](p, mass[code](t, p, mass1))
	require.NoError(t, err)

	a, _ := p.Parse("A")
	assert.InDelta(t, 0.1+0.1+0.25, pl.Weight(a), 1e-12)
	assert.InDelta(t, 1, pl.Weight(p.Top()), 1e-12)
	assert.Zero(t, pl.Weight(p.Bottom()))
}

// TestPignistic spreads mass by leaf priors.
func TestPignistic(t *testing.T) {
	p := abc(t)
	bet, err := belief.MassToPignistic[code](p, mass[code](t, p, mass1))
	require.NoError(t, err)
	for label, want := range map[string]float64{"A": 0.275, "B": 0.375, "C": 0.35} {
		e, _ := p.Parse(label)
		assert.InDelta(t, want, bet.Weight(e), 1e-12, label)
	}
	assert.Equal(t, 3, bet.Len())

	tx := vehicles(t)
	bet, err = belief.MassToPignistic[taxonomy.Code](tx, mass[taxonomy.Code](t, tx, map[string]float64{"Ground": 0.5, "Hovercraft": 0.5}))
	require.NoError(t, err)
	for label, want := range map[string]float64{"Car": 0.2, "Truck": 0.15, "Bike": 0.15, "Hovercraft": 0.5} {
		e, _ := tx.Parse(label)
		assert.InDelta(t, want, bet.Weight(e), 1e-12, label)
	}

	flat, err := powerset.FromLabels([]string{"A", "B"}, powerset.WithPriors([]float64{0, 0}))
	require.NoError(t, err)
	bet, err = belief.MassToPignistic[code](flat, mass[code](t, flat, map[string]float64{"A|B": 1}))
	require.NoError(t, err)
	a, _ := flat.Parse("A")
	assert.InDelta(t, 0.5, bet.Weight(a), 1e-12, "zero priors split evenly")
}

// TestTransforms_Errors covers provenance and capacity failures.
func TestTransforms_Errors(t *testing.T) {
	p := abc(t)
	other, err := powerset.FromLabels([]string{"X", "Y", "Z"})
	require.NoError(t, err)
	foreign := mass[code](t, other, map[string]float64{"X": 1})

	_, err = belief.MassToCommonality[code](p, foreign)
	assert.ErrorIs(t, err, belief.ErrHashMismatch)
	assert.Contains(t, err.Error(), "mismatching lattice hash")
	_, err = belief.MassToPignistic[code](p, foreign)
	assert.ErrorIs(t, err, belief.ErrHashMismatch)
	_, err = belief.ImplicabilityToCredibility[code](p, foreign)
	assert.ErrorIs(t, err, belief.ErrHashMismatch)

	big, err := powerset.New(11)
	require.NoError(t, err)
	l0, _ := big.Parse("L0")
	b := assignment.NewBuilder[code](big.Hash(), 1, 1)
	_, _ = b.Push(l0, 1)
	_, err = belief.MassToImplicability[code](big, b.Freeze())
	assert.ErrorIs(t, err, lattice.ErrTooLargeToIterate)
	_, err = belief.MassToPignistic[code](big, b.Freeze())
	assert.NoError(t, err, "pignistic needs leaves only")
}

// TestTransforms_InvalidRepresentations rejects inputs no mass could produce.
func TestTransforms_InvalidRepresentations(t *testing.T) {
	p := abc(t)
	lone := mass[code](t, p, map[string]float64{"A": 0.5})

	// q(⊥) must be at least q(A).
	_, err := belief.CommonalityToMass[code](p, lone)
	assert.ErrorIs(t, err, belief.ErrNegativeResidual)

	// b(A|B) must be at least b(A).
	_, err = belief.ImplicabilityToMass[code](p, lone)
	assert.ErrorIs(t, err, belief.ErrNegativeResidual)

	_, err = belief.CredibilityToImplicability[code](p, mass[code](t, p, map[string]float64{"⊤": 1.5}))
	assert.ErrorIs(t, err, belief.ErrCredibilityOverflow)
}

// TestLookup resolves names and checks the complement requirement.
func TestLookup(t *testing.T) {
	names := belief.Names()
	require.Len(t, names, 11)
	for _, name := range names {
		_, err := belief.Lookup[code](name)
		assert.NoError(t, err, name)
	}
	_, err := belief.Lookup[code]("mass-to-nothing")
	assert.ErrorIs(t, err, belief.ErrUnknownTransform)

	tx := vehicles(t)
	pl, err := belief.Lookup[taxonomy.Code](belief.NamePlausibilityToMass)
	require.NoError(t, err)
	_, err = pl(tx, mass[taxonomy.Code](t, tx, map[string]float64{"Car": 1}))
	assert.ErrorIs(t, err, belief.ErrNotComplemented)

	p := abc(t)
	toQ, err := belief.Lookup[code](belief.NameMassToCommonality)
	require.NoError(t, err)
	q, err := toQ(p, mass[code](t, p, mass1))
	require.NoError(t, err)
	assert.InDelta(t, 1, q.Weight(p.Bottom()), 1e-12)
}
