// SPDX-License-Identifier: MIT

// Package powerset implements the lattice of all subsets of up to 128 leaves.
//
// Every element is a bitmask (lukechampine.com/uint128): bit i is set iff
// leaf i belongs to the subset. The algebra is plain bit arithmetic:
//
//	Meet(a, b) = a AND b      bottom = 0
//	Join(a, b) = a OR b       top    = 2^n − 1
//	Not(a)     = a XOR top
//
// Powerset satisfies lattice.ComplementedLattice, lattice.IterableLattice
// and lattice.LatticeWithLeaves. Enumeration is precomputed at construction
// only when 2^n ≤ the iteration ceiling (WithIterationLimit, default
// lattice.DefaultIterationLimit); larger powersets answer
// lattice.ErrTooLargeToIterate.
//
// Text syntax: "A|C" names the subset {A, C}; "⊥" and "⊤" name bottom and top.
//
// Complexity:
//
//	– Meet/Join/Not/Contains: O(1).
//	– Construction: O(n) plus O(2^n) when enumeration is precomputed.
package powerset
