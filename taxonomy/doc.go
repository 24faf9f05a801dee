// SPDX-License-Identifier: MIT

// Package taxonomy implements the lattice of a hierarchical classification:
// every taxon implies its ancestors, meet of incomparable taxa is bottom and
// join is the lowest common ancestor.
//
// Construction compiles a declarative tree (Node / Leaf) in three phases:
//
//  1. Binarization. Wide nodes are reshaped by repeatedly merging their two
//     shallowest children under a synthetic (unnamed) node until every node
//     has at most two children. Merging the shallowest pair keeps the binary
//     depth minimal; it must not exceed 121 (ErrTooDeep).
//
//  2. Code assignment. The binary tree is walked top-down. A node at depth d
//     gets the 128-bit code
//
//	  depth (7 bits) | path (121 bits)
//	  ───────────────┼────────────────────────────────────────────
//	  d              | choice bits 1..d, then all ones ("don't care")
//
//     Going left clears the next path bit, going right keeps it. A descendant
//     therefore agrees with its ancestor on the ancestor's first d bits, and
//     inclusion is a masked comparison. Synthetic nodes get codes too, but a
//     side table maps each of them onto its nearest real ancestor.
//
//  3. Tables. Labels ↔ codes, leaves with their prior weights, and the
//     pre-order of real taxa, which is directly a top→bottom enumeration.
//
// Special codes:
//
//	Bottom   = 0x7F << 121            (depth 127, never a taxon)
//	Top      = 2^121 − 1              (the root: depth 0, all path bits set)
//	AboveTop = 1 << 121               (sentinel just above Top, never a taxon)
//
// Meet keeps the deeper operand when the two are comparable and returns
// Bottom otherwise. Join takes the common path prefix (leading zeros of the
// path XOR, clamped by both depths), sets every bit below it and resolves the
// result through the synthetic-node table.
//
// Complexity:
//
//	– Meet/Join/Contains: O(1) (one map lookup for Join).
//	– Construction: O(T log T) for T declared taxa.
package taxonomy
