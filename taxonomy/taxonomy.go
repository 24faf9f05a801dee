// SPDX-License-Identifier: MIT

package taxonomy

import (
	"fmt"

	"github.com/katalvlaran/evidence/lattice"
)

const panicNoChildren = "taxonomy: binary node without children"

// Taxon is the compiled, code-indexed form of one declared taxon.
type Taxon struct {
	Name     string
	Code     Code
	Children []Code // declared children, in declaration order
	Weight   float64
}

// IsLeaf reports whether t has no children.
func (t Taxon) IsLeaf() bool { return len(t.Children) == 0 }

// Taxonomy is the lattice of a hierarchical classification.
// It is immutable after construction and safe for concurrent reads.
type Taxonomy struct {
	lattice.Base[Code]
	alg         *algebra
	taxa        map[Code]Taxon
	topToBottom []Code // pre-order of real taxa, then Bottom
	leaves      []Code // declaration order
	height      int
	iterable    bool
}

// Compile-time capability check.
var _ lattice.Frame[Code] = (*Taxonomy)(nil)

// New compiles the declared tree rooted at root.
//
// Errors: ErrBadName, ErrDuplicateTaxon, ErrBadWeight, ErrEmptyNode for
// malformed declarations; ErrTooDeep when the binarized tree needs more than
// MaxDepth levels.
//
// Complexity: O(T·k) for T taxa and fan-out k.
func New(root Builder, opts ...Option) (*Taxonomy, error) {
	o := gatherOptions(opts)

	count, err := root.validate(make(map[string]struct{}))
	if err != nil {
		return nil, err
	}

	bin := binarize(root)
	if bin.height > MaxDepth {
		return nil, fmt.Errorf("New(%q): depth %d: %w", root.name, bin.height, ErrTooDeep)
	}

	alg := &algebra{
		tags:   make(map[Code]string, count+1),
		untags: make(map[string]Code, count),
		coder:  make(map[Code]Code),
	}
	alg.tags[Bottom] = lattice.BottomGlyph
	alg.assign(bin, taxonCode{depth: 0, path: pathMask}, Top)

	fp := lattice.NewFingerprint("taxonomy")
	root.fingerprint(fp)

	t := &Taxonomy{
		Base:        lattice.NewBase[Code](fp.Sum(), alg),
		alg:         alg,
		taxa:        make(map[Code]Taxon, count),
		topToBottom: make([]Code, 0, count+1),
		height:      bin.height,
		iterable:    count+1 <= o.iterationLimit,
	}
	t.collect(root)
	t.topToBottom = append(t.topToBottom, Bottom)

	return t, nil
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// assign walks the binary tree top-down, giving every node the code c.
// Synthetic nodes are recorded against their nearest real ancestor.
func (a *algebra) assign(n *bnode, c taxonCode, realAncestor Code) {
	code := c.pack()
	switch n.kind {
	case realNode:
		a.tags[code] = n.name
		a.untags[n.name] = code
		realAncestor = code
	case syntheticNode:
		a.coder[code] = realAncestor
	}
	if n.leaf {
		return
	}
	if len(n.children) == 0 {
		panic(panicNoChildren)
	}

	d := int(c.depth)
	a.assign(n.children[0], taxonCode{depth: c.depth + 1, path: c.path.Xor(choiceBit(d))}, realAncestor)
	if len(n.children) > 1 {
		a.assign(n.children[1], taxonCode{depth: c.depth + 1, path: c.path}, realAncestor)
	}
}

// collect fills taxa, topToBottom and leaves in declared pre-order.
func (t *Taxonomy) collect(b Builder) Code {
	code := t.alg.untags[b.name]
	t.topToBottom = append(t.topToBottom, code)

	taxon := Taxon{Name: b.name, Code: code, Weight: b.weight}
	if b.leaf {
		t.leaves = append(t.leaves, code)
	} else {
		taxon.Children = make([]Code, 0, len(b.children))
		for _, c := range b.children {
			taxon.Children = append(taxon.Children, t.collect(c))
		}
	}
	t.taxa[code] = taxon

	return code
}

// Len returns the number of declared taxa (bottom excluded).
func (t *Taxonomy) Len() int { return len(t.taxa) }

// Height returns the depth of the binarized tree.
func (t *Taxonomy) Height() int { return t.height }

// Taxa returns the compiled taxa from root to leaves in declared pre-order.
func (t *Taxonomy) Taxa() []Taxon {
	out := make([]Taxon, 0, len(t.taxa))
	for _, code := range t.topToBottom[:len(t.topToBottom)-1] {
		out = append(out, t.taxa[code])
	}

	return out
}

// Taxon returns the compiled taxon behind e. Bottom is not a taxon.
func (t *Taxonomy) Taxon(e lattice.SafeElement[Code]) (Taxon, error) {
	if e.Hash() != t.Hash() {
		return Taxon{}, lattice.ErrElementNotInLattice
	}
	taxon, ok := t.taxa[e.Code()]
	if !ok {
		return Taxon{}, fmt.Errorf("Taxon(%v): %w", e.Code(), lattice.ErrNotInLattice)
	}

	return taxon, nil
}

// BottomToTop returns every taxon after all of its descendants, bottom first.
func (t *Taxonomy) BottomToTop() ([]lattice.SafeElement[Code], error) {
	out, err := t.TopToBottom()
	if err != nil {
		return nil, err
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out, nil
}

// TopToBottom returns the root first, every taxon before its descendants,
// and bottom last.
func (t *Taxonomy) TopToBottom() ([]lattice.SafeElement[Code], error) {
	if !t.iterable {
		return nil, fmt.Errorf("taxonomy of %d elements: %w", len(t.topToBottom), lattice.ErrTooLargeToIterate)
	}
	out := make([]lattice.SafeElement[Code], len(t.topToBottom))
	for i, code := range t.topToBottom {
		out[i] = lattice.Unchecked(code, t.Hash())
	}

	return out, nil
}

// Leaves returns the terminal taxa in declaration order.
func (t *Taxonomy) Leaves() []lattice.SafeElement[Code] {
	out := make([]lattice.SafeElement[Code], len(t.leaves))
	for i, code := range t.leaves {
		out[i] = lattice.Unchecked(code, t.Hash())
	}

	return out
}

// WeightedLeaves returns the terminal taxa with their declared weights.
func (t *Taxonomy) WeightedLeaves() []lattice.WeightedLeaf[Code] {
	out := make([]lattice.WeightedLeaf[Code], len(t.leaves))
	for i, code := range t.leaves {
		out[i] = lattice.WeightedLeaf[Code]{Element: lattice.Unchecked(code, t.Hash()), Weight: t.taxa[code].Weight}
	}

	return out
}

// Leaf returns the i-th terminal taxon in declaration order.
func (t *Taxonomy) Leaf(i int) (lattice.SafeElement[Code], error) {
	if i < 0 || i >= len(t.leaves) {
		return lattice.SafeElement[Code]{}, fmt.Errorf("Leaf(%d): %w", i, lattice.ErrLeafOutOfRange)
	}

	return lattice.Unchecked(t.leaves[i], t.Hash()), nil
}

// algebra is the unchecked packed-code algebra behind Taxonomy.
type algebra struct {
	tags   map[Code]string // real taxa and Bottom
	untags map[string]Code
	coder  map[Code]Code // synthetic code → nearest real ancestor
}

func (a *algebra) Bottom() Code { return Bottom }

func (a *algebra) Top() Code { return Top }

func (a *algebra) Contains(code Code) bool {
	_, ok := a.tags[code]
	return ok
}

func (a *algebra) Meet(x, y Code) Code {
	if x == Bottom || y == Bottom {
		return Bottom
	}
	ux, uy := unpack(x), unpack(y)
	if ux.depth < uy.depth {
		ux, uy = uy, ux
		x = y
	}
	if implies(ux, uy) {
		return x
	}

	return Bottom
}

func (a *algebra) Join(x, y Code) Code {
	if x == Bottom {
		return y
	}
	if y == Bottom {
		return x
	}
	ux := unpack(x)
	code := ancestorAt(ux, commonDepth(ux, unpack(y))).pack()
	if named, ok := a.coder[code]; ok {
		return named
	}

	return code
}

func (a *algebra) Format(code Code) string {
	tag, ok := a.tags[code]
	if !ok {
		panic(fmt.Sprintf("taxonomy: no tag for code %v", code))
	}

	return tag
}

func (a *algebra) Parse(text string) (Code, error) {
	return lattice.ParseJoined[Code](text, a, func(label string) (Code, bool) {
		c, ok := a.untags[label]
		return c, ok
	})
}
