// SPDX-License-Identifier: MIT

// Package evidence is an in-memory engine for fusing uncertain evidence in
// the Dempster–Shafer and Dezert–Smarandache tradition, generalized to any
// finite lattice.
//
// Sources describe what they believe as mass assignments: non-negative
// weights on lattice elements. The engine combines several of them under a
// fusion rule, reports how much mass the rule had to discard as conflict and
// converts the result into other belief representations.
//
// Everything is organized under these subpackages:
//
//	lattice/      the element and lattice contracts, lattice hashes, shared Parse/Format
//	powerset/     powerset lattice over up to 128 labelled leaves
//	taxonomy/     taxonomy lattice over a declared tree, packed into 128-bit codes
//	assignment/   Builder (mutable, pruning) and Assignment (frozen) mass assignments
//	fusion/       the Discounted engine, stock referees, discounting
//	belief/       commonality, implicability, credibility, plausibility, pignistic
//	codec/        YAML documents for lattices and assignments
//	metrics/      Prometheus observer for the fusion engine
//	cmd/evidence  command line front end
//
// Quick example, two sources over {A, B, C}:
//
//	m1: A 0.6, B|C 0.4
//	m2: B 0.5, A|C 0.5
//
//	Dempster ⇒ conflict 0.3, A 3/7, B 2/7, C 2/7
//
// Lattices are immutable and may be shared between goroutines. Builders and
// engines hold no global state; the command line front end runs independent
// fusions concurrently against one lattice.
//
//	go get github.com/katalvlaran/evidence
package evidence
