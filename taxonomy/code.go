// SPDX-License-Identifier: MIT

package taxonomy

import (
	"math"

	"lukechampine.com/uint128"
)

// Code is the packed element code of a taxonomy.
type Code = uint128.Uint128

const (
	// PathBits is the width of the path field.
	PathBits = 121

	// MaxDepth is the deepest binary level a path can address.
	MaxDepth = PathBits

	// bottomDepth marks the undefined element.
	bottomDepth = 0x7F
)

var (
	// pathMask selects the 121 path bits.
	pathMask = uint128.New(math.MaxUint64, 1<<(PathBits-64)-1)

	// Bottom is the code of the least element.
	Bottom = uint128.From64(bottomDepth).Lsh(PathBits)

	// Top is the code of the root taxon.
	Top = pathMask

	// AboveTop is a sentinel immediately above Top in code order; no taxon has it.
	AboveTop = uint128.From64(1).Lsh(PathBits)
)

// taxonCode is the unpacked form used while compiling and comparing codes.
type taxonCode struct {
	depth uint8
	path  uint128.Uint128
}

// pack concatenates depth and path into the boundary code.
func (c taxonCode) pack() Code {
	return uint128.From64(uint64(c.depth)).Lsh(PathBits).Or(c.path)
}

// unpack splits a boundary code into depth and path.
func unpack(code Code) taxonCode {
	return taxonCode{depth: uint8(code.Rsh(PathBits).Lo), path: code.And(pathMask)}
}

// lowOnes returns a mask of the k lowest bits, 0 ≤ k ≤ PathBits.
func lowOnes(k int) uint128.Uint128 {
	return uint128.From64(1).Lsh(uint(k)).Sub64(1)
}

// prefixMask selects the first d choice bits of a path.
func prefixMask(d int) uint128.Uint128 {
	return pathMask.Xor(lowOnes(PathBits - d))
}

// choiceBit is the path bit decided when descending from depth d to d+1.
func choiceBit(d int) uint128.Uint128 {
	return uint128.From64(1).Lsh(uint(PathBits - 1 - d))
}

// commonDepth is the length of the common path prefix of a and b, clamped
// by both depths.
func commonDepth(a, b taxonCode) int {
	l := a.path.Xor(b.path).LeadingZeros() - (128 - PathBits)
	if int(a.depth) < l {
		l = int(a.depth)
	}
	if int(b.depth) < l {
		l = int(b.depth)
	}

	return l
}

// ancestorAt returns the code of a's ancestor at depth d ≤ a.depth.
func ancestorAt(a taxonCode, d int) taxonCode {
	return taxonCode{depth: uint8(d), path: a.path.And(prefixMask(d)).Or(lowOnes(PathBits - d))}
}

// implies reports deep ≤ shallow, both real (non-bottom) codes.
func implies(deep, shallow taxonCode) bool {
	if deep.depth < shallow.depth {
		return false
	}
	m := prefixMask(int(shallow.depth))

	return deep.path.And(m) == shallow.path.And(m)
}
