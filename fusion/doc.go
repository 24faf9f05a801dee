// SPDX-License-Identifier: MIT

// Package fusion combines mass assignments from independent sources.
//
// The engine (Discounted) enumerates the tensor product of its sources: every
// combination picks one focal element per source and carries the product of
// their weights. A Referee decides where that product goes. It returns
// sub-weights over output elements which the engine scales by the product
// and accumulates. Whatever a referee does not return is conflict.
//
//	for each (x1, …, xs) ∈ F1 × … × Fs:
//	    p ← m1(x1) · … · ms(xs)
//	    P ← P + p
//	    for (y, f) ∈ referee(x1, …, xs):
//	        m(y) += f · p
//	conflict ← 1 − Σ m / P
//	m ← m / Σ m
//
// Sources need not be normalized: P is the mass they supplied, and it is 1
// when they are.
//
// Pruning bounds the accumulator. WithSizeRange(mid, max) sets the
// thresholds: whenever the result holds more than max focal elements, the
// two lightest are merged by the configured pruner (join by default, so mass
// moves to the common ancestor) until mid remain. A final pass runs before
// the conflict is measured.
//
// The default join only generalizes: merged mass lands on an element implied
// by both inputs. WithPruner(PruneMeet) selects the
// meet-based merge instead. It keeps the result specific but sends the mass
// of two disjoint elements to bottom.
//
// Stock referees: Dempster, Conjunctive, Disjunctive and PCR6. Discount
// applies Shafer's reliability discounting to a source before fusion.
//
// Determinism: sources are enumerated in ascending code order and the
// pruning heap breaks weight ties by code, so equal inputs give bit-identical
// outputs.
//
// Complexity: O(Π|Fi| · (s + r log n)) for s sources, referee output size r
// and accumulator size n ≤ max.
package fusion
