// SPDX-License-Identifier: MIT

// Package belief converts a mass assignment m into the other classical
// representations of a belief function and back:
//
//	commonality    q(x)   = Σ_{y ≥ x} m(y)
//	implicability  b(x)   = Σ_{y ≤ x} m(y)
//	credibility    bel(x) = Σ_{⊥ < y ≤ x} m(y)
//	plausibility   pl(x)  = Σ_{y ∧ x ≠ ⊥} m(y)
//	pignistic      BetP(ℓ) = Σ_{x ≥ ℓ} m(x) · prior(ℓ) / Σ_{ℓ' ≤ x} prior(ℓ')
//
// Forward transforms sum over the focal elements of m for every element of
// the lattice. Inverse transforms sweep the enumeration of the lattice so
// that each residual only depends on values already computed: top to bottom
// for commonality, bottom to top for implicability and credibility. They
// therefore need an IterableLattice and fail with
// lattice.ErrTooLargeToIterate above its ceiling.
//
// Implicability and credibility differ by the constant m(⊥), so converting
// between them is a single shift instead of a sweep. Plausibility is turned
// back into mass through b(z) = 1 − pl(¬z), which needs a complemented
// lattice.
//
// Values at or below assignment.Epsilon are dropped from every output; that
// includes residuals in [−ε, 0) left by rounding.
//
// Complexity: O(N·F) for N lattice elements and F focal elements; the
// shift conversions are O(N).
package belief
