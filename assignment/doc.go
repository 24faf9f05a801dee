// SPDX-License-Identifier: MIT

// Package assignment holds weighted lattice elements: the mutable Builder used
// while a mass distribution is being computed, and the immutable Assignment it
// freezes into.
//
// A Builder keeps two views of the same entries in sync: a min-heap ordered
// by (weight, code) that drives pruning, and an index by element code that
// makes repeated pushes accumulate. Every entry is tagged with the hash of the
// lattice the Builder was created for; elements from another lattice are
// rejected by Push.
//
// Weights are finite and non-negative. Weights at or below Epsilon are never
// stored: Push reports false for them and Map drops them.
//
// Pruning keeps a Builder small. Once it holds more than lengthMax entries,
// Prune repeatedly merges the two lightest entries into pruner(x, y) carrying
// their summed weight until at most lengthMid remain. Total weight is
// preserved and the gap between the two thresholds avoids pruning on every
// push near the boundary.
//
// Complexity:
//
//	– Push, Remove: O(log n).
//	– Prune: O(k log n) for k merges.
//	– Map, Scale, NegShift, Normalize: O(n).
//	– Freeze: O(n).
package assignment
