// SPDX-License-Identifier: MIT

package taxonomy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/evidence/lattice"
)

// Sentinel errors for taxonomy construction.
var (
	// ErrEmptyNode indicates a Node declared without children.
	ErrEmptyNode = errors.New("taxonomy: node has no children")

	// ErrTooDeep indicates the binarized tree needs more than MaxDepth levels.
	ErrTooDeep = errors.New("taxonomy: binarized depth exceeds 121")

	// ErrDuplicateTaxon indicates two taxa share a name.
	ErrDuplicateTaxon = errors.New("taxonomy: duplicate taxon name")

	// ErrBadName indicates an empty name, a reserved glyph, or a name containing the separator.
	ErrBadName = errors.New("taxonomy: invalid taxon name")

	// ErrBadWeight indicates a non-finite or negative leaf weight.
	ErrBadWeight = errors.New("taxonomy: leaf weight must be finite and non-negative")
)

// Builder is the declarative form of a taxon tree, produced by Node and Leaf.
// The zero value is not a valid tree.
type Builder struct {
	name     string
	weight   float64
	children []Builder
	leaf     bool
}

// Node declares an inner taxon.
func Node(name string, children ...Builder) Builder {
	return Builder{name: name, children: children}
}

// Leaf declares a terminal taxon with its prior weight.
func Leaf(name string, weight float64) Builder {
	return Builder{name: name, weight: weight, leaf: true}
}

// Name returns the declared name.
func (b Builder) Name() string { return b.name }

// IsLeaf reports whether b was declared with Leaf.
func (b Builder) IsLeaf() bool { return b.leaf }

// Weight returns the prior weight of a leaf (0 for nodes).
func (b Builder) Weight() float64 { return b.weight }

// Children returns the declared children of a node.
func (b Builder) Children() []Builder { return b.children }

// validate checks names, weights and fan-out over the whole tree and returns
// the number of declared taxa.
func (b Builder) validate(seen map[string]struct{}) (int, error) {
	if b.name == "" || b.name == lattice.BottomGlyph || b.name == lattice.TopGlyph ||
		strings.Contains(b.name, lattice.Separator) || strings.TrimSpace(b.name) != b.name {
		return 0, fmt.Errorf("%w: %q", ErrBadName, b.name)
	}
	if _, dup := seen[b.name]; dup {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateTaxon, b.name)
	}
	seen[b.name] = struct{}{}

	if b.leaf {
		if math.IsNaN(b.weight) || math.IsInf(b.weight, 0) || b.weight < 0 {
			return 0, fmt.Errorf("leaf %q weight %v: %w", b.name, b.weight, ErrBadWeight)
		}
		return 1, nil
	}
	if len(b.children) == 0 {
		return 0, fmt.Errorf("node %q: %w", b.name, ErrEmptyNode)
	}
	count := 1
	for _, c := range b.children {
		n, err := c.validate(seen)
		if err != nil {
			return 0, err
		}
		count += n
	}

	return count, nil
}

// fingerprint writes the declared structure in pre-order.
func (b Builder) fingerprint(fp *lattice.Fingerprint) {
	fp.String(b.name)
	if b.leaf {
		fp.Int(-1).Float(b.weight)
		return
	}
	fp.Int(len(b.children))
	for _, c := range b.children {
		c.fingerprint(fp)
	}
}
