// SPDX-License-Identifier: MIT
// Base: the checked and unchecked operation set shared by every lattice.
// Checked methods compare operand hashes first and return
// ErrElementNotInLattice or ErrEntriesNotInLattice; Unsafe methods skip the
// check and go straight to the Algebra.

package lattice

import (
	"fmt"
	"strings"
)

// Base implements the checked and unchecked operation set of Lattice over an
// Algebra. Concrete lattices embed it and add their own capabilities.
//
// The zero value is unusable; build it with NewBase.
//
// Complexity: every checked operation costs one or two hash comparisons on top
// of the Algebra call it wraps; the Unsafe forms cost the Algebra call alone.
type Base[X Element[X]] struct {
	hash Hash
	alg  Algebra[X]
}

// NewBase binds alg to the structural hash h.
func NewBase[X Element[X]](h Hash, alg Algebra[X]) Base[X] {
	return Base[X]{hash: h, alg: alg}
}

// Hash returns the structural fingerprint of the lattice.
func (b Base[X]) Hash() Hash { return b.hash }

// Bottom returns the least element.
func (b Base[X]) Bottom() SafeElement[X] { return b.wrap(b.alg.Bottom()) }

// Top returns the greatest element.
func (b Base[X]) Top() SafeElement[X] { return b.wrap(b.alg.Top()) }

// Contains reports whether the raw code is a member of the lattice.
func (b Base[X]) Contains(code X) bool { return b.alg.Contains(code) }

// CheckSafe validates a raw code and tags it with the lattice hash.
//
// Complexity: that of Algebra.Contains.
//
// Errors: ErrNotInLattice.
func (b Base[X]) CheckSafe(code X) (SafeElement[X], error) {
	if !b.alg.Contains(code) {
		return SafeElement[X]{}, fmt.Errorf("CheckSafe(%v): %w", code, ErrNotInLattice)
	}

	return b.wrap(code), nil
}

// Meet returns the greatest lower bound of x and y.
//
// Complexity: O(1), a few 128-bit operations for the stock lattices.
//
// Errors: ErrEntriesNotInLattice when either operand carries another hash.
func (b Base[X]) Meet(x, y SafeElement[X]) (SafeElement[X], error) {
	if err := b.checkPair(x, y); err != nil {
		return SafeElement[X]{}, err
	}

	return b.UnsafeMeet(x, y), nil
}

// Join returns the least upper bound of x and y.
//
// Complexity: O(1), plus one map lookup for taxonomy codes.
//
// Errors: ErrEntriesNotInLattice when either operand carries another hash.
func (b Base[X]) Join(x, y SafeElement[X]) (SafeElement[X], error) {
	if err := b.checkPair(x, y); err != nil {
		return SafeElement[X]{}, err
	}

	return b.UnsafeJoin(x, y), nil
}

// IsBottom reports whether x is the least element.
func (b Base[X]) IsBottom(x SafeElement[X]) (bool, error) {
	if err := b.checkOne(x); err != nil {
		return false, err
	}

	return b.UnsafeIsBottom(x), nil
}

// IsTop reports whether x is the greatest element.
func (b Base[X]) IsTop(x SafeElement[X]) (bool, error) {
	if err := b.checkOne(x); err != nil {
		return false, err
	}

	return b.UnsafeIsTop(x), nil
}

// Cover reports whether Join(x, y) is top.
func (b Base[X]) Cover(x, y SafeElement[X]) (bool, error) {
	if err := b.checkPair(x, y); err != nil {
		return false, err
	}

	return b.UnsafeCover(x, y), nil
}

// Disjoint reports whether Meet(x, y) is bottom.
func (b Base[X]) Disjoint(x, y SafeElement[X]) (bool, error) {
	if err := b.checkPair(x, y); err != nil {
		return false, err
	}

	return b.UnsafeDisjoint(x, y), nil
}

// ImpliesJoin reports x ≤ y, tested as Join(x, y) == y.
func (b Base[X]) ImpliesJoin(x, y SafeElement[X]) (bool, error) {
	if err := b.checkPair(x, y); err != nil {
		return false, err
	}

	return b.UnsafeImpliesJoin(x, y), nil
}

// ImpliedJoin reports y ≤ x, tested as Join(x, y) == x.
func (b Base[X]) ImpliedJoin(x, y SafeElement[X]) (bool, error) {
	if err := b.checkPair(x, y); err != nil {
		return false, err
	}

	return b.UnsafeImpliedJoin(x, y), nil
}

// ImpliesMeet reports x ≤ y, tested as Meet(x, y) == x.
func (b Base[X]) ImpliesMeet(x, y SafeElement[X]) (bool, error) {
	if err := b.checkPair(x, y); err != nil {
		return false, err
	}

	return b.UnsafeImpliesMeet(x, y), nil
}

// ImpliedMeet reports y ≤ x, tested as Meet(x, y) == y.
func (b Base[X]) ImpliedMeet(x, y SafeElement[X]) (bool, error) {
	if err := b.checkPair(x, y); err != nil {
		return false, err
	}

	return b.UnsafeImpliedMeet(x, y), nil
}

// UnsafeMeet is Meet without the hash check.
func (b Base[X]) UnsafeMeet(x, y SafeElement[X]) SafeElement[X] {
	return b.wrap(b.alg.Meet(x.code, y.code))
}

// UnsafeJoin is Join without the hash check.
func (b Base[X]) UnsafeJoin(x, y SafeElement[X]) SafeElement[X] {
	return b.wrap(b.alg.Join(x.code, y.code))
}

// UnsafeIsBottom is IsBottom without the hash check.
func (b Base[X]) UnsafeIsBottom(x SafeElement[X]) bool { return x.code == b.alg.Bottom() }

// UnsafeIsTop is IsTop without the hash check.
func (b Base[X]) UnsafeIsTop(x SafeElement[X]) bool { return x.code == b.alg.Top() }

// UnsafeCover is Cover without the hash check.
func (b Base[X]) UnsafeCover(x, y SafeElement[X]) bool {
	return b.alg.Join(x.code, y.code) == b.alg.Top()
}

// UnsafeDisjoint is Disjoint without the hash check.
func (b Base[X]) UnsafeDisjoint(x, y SafeElement[X]) bool {
	return b.alg.Meet(x.code, y.code) == b.alg.Bottom()
}

// UnsafeImpliesJoin is ImpliesJoin without the hash check.
func (b Base[X]) UnsafeImpliesJoin(x, y SafeElement[X]) bool {
	return b.alg.Join(x.code, y.code) == y.code
}

// UnsafeImpliedJoin is ImpliedJoin without the hash check.
func (b Base[X]) UnsafeImpliedJoin(x, y SafeElement[X]) bool {
	return b.alg.Join(x.code, y.code) == x.code
}

// UnsafeImpliesMeet is ImpliesMeet without the hash check.
func (b Base[X]) UnsafeImpliesMeet(x, y SafeElement[X]) bool {
	return b.alg.Meet(x.code, y.code) == x.code
}

// UnsafeImpliedMeet is ImpliedMeet without the hash check.
func (b Base[X]) UnsafeImpliedMeet(x, y SafeElement[X]) bool {
	return b.alg.Meet(x.code, y.code) == y.code
}

// Parse reads the element text syntax.
//
// Complexity: O(k) label lookups and joins for k labels in text.
//
// Errors: ErrEmptyText, ErrUnknownLabel, wrapped with the offending text.
func (b Base[X]) Parse(text string) (SafeElement[X], error) {
	code, err := b.alg.Parse(text)
	if err != nil {
		return SafeElement[X]{}, fmt.Errorf("Parse(%q): %w", text, err)
	}

	return b.wrap(code), nil
}

// Format renders x in the element text syntax.
//
// Complexity: that of Algebra.Format, linear in the labels x covers.
//
// Errors: ErrElementNotInLattice.
func (b Base[X]) Format(x SafeElement[X]) (string, error) {
	if err := b.checkOne(x); err != nil {
		return "", err
	}

	return b.alg.Format(x.code), nil
}

// checkOne verifies a single operand's provenance.
func (b Base[X]) checkOne(x SafeElement[X]) error {
	if x.hash != b.hash {
		return ErrElementNotInLattice
	}

	return nil
}

// checkPair verifies the provenance of both operands.
func (b Base[X]) checkPair(x, y SafeElement[X]) error {
	if x.hash != b.hash || y.hash != b.hash {
		return ErrEntriesNotInLattice
	}

	return nil
}

func (b Base[X]) wrap(code X) SafeElement[X] { return SafeElement[X]{code: code, hash: b.hash} }

// SplitLabels cuts element text into trimmed, non-empty labels.
func SplitLabels(text string) []string {
	parts := strings.Split(text, Separator)
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			labels = append(labels, p)
		}
	}

	return labels
}

// ParseJoined resolves every label of text with resolve and folds them with
// join. The glyphs BottomGlyph and TopGlyph map to bottom and top.
//
// Errors: ErrEmptyText, ErrUnknownLabel.
func ParseJoined[X Element[X]](text string, alg Algebra[X], resolve func(label string) (X, bool)) (X, error) {
	labels := SplitLabels(text)
	if len(labels) == 0 {
		var zero X
		return zero, ErrEmptyText
	}

	acc := alg.Bottom()
	for _, label := range labels {
		var code X
		switch label {
		case BottomGlyph:
			code = alg.Bottom()
		case TopGlyph:
			code = alg.Top()
		default:
			var ok bool
			if code, ok = resolve(label); !ok {
				var zero X
				return zero, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
			}
		}
		acc = alg.Join(acc, code)
	}

	return acc, nil
}
