// SPDX-License-Identifier: MIT

package powerset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/evidence/lattice"
	"lukechampine.com/uint128"
)

// MaxLeaves is the widest powerset a 128-bit code can hold.
const MaxLeaves = 128

// Sentinel errors for powerset construction.
var (
	// ErrTooManyLeaves indicates more than MaxLeaves leaves were requested.
	ErrTooManyLeaves = errors.New("powerset: number of leaves cannot exceed 128")

	// ErrNoLeaves indicates an empty leaf set.
	ErrNoLeaves = errors.New("powerset: at least one leaf is required")

	// ErrPriorsMismatch indicates WithPriors was given a slice of the wrong length.
	ErrPriorsMismatch = errors.New("powerset: priors length differs from leaf count")
)

// Code is the element code of a powerset: a bitmask over leaf indices.
type Code = uint128.Uint128

// Powerset is the lattice of all subsets of a labelled leaf set.
// It is immutable after construction and safe for concurrent reads.
type Powerset struct {
	lattice.Base[Code]
	alg   *algebra
	order []Code // bottom→top enumeration; nil when above the iteration ceiling
}

// Compile-time capability checks.
var (
	_ lattice.ComplementedLattice[Code] = (*Powerset)(nil)
	_ lattice.Frame[Code]               = (*Powerset)(nil)
)

// New builds a powerset over n leaves labelled "L0" … "L{n-1}".
func New(n int, opts ...Option) (*Powerset, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNoLeaves)
	}
	if n > MaxLeaves {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooManyLeaves)
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("L%d", i)
	}

	return FromLabels(labels, opts...)
}

// FromLabels builds a powerset whose leaf i carries labels[i].
// Labels need not be unique; Parse resolves a repeated label to its first leaf.
//
// Complexity: O(n) plus O(2^n) when 2^n fits the iteration ceiling.
func FromLabels(labels []string, opts ...Option) (*Powerset, error) {
	n := len(labels)
	if n == 0 {
		return nil, ErrNoLeaves
	}
	if n > MaxLeaves {
		return nil, fmt.Errorf("FromLabels(%d labels): %w", n, ErrTooManyLeaves)
	}

	o := gatherOptions(opts)
	priors := o.priors
	if priors == nil {
		priors = make([]float64, n)
		for i := range priors {
			priors[i] = 1
		}
	} else if len(priors) != n {
		return nil, fmt.Errorf("FromLabels: %d priors for %d leaves: %w", len(priors), n, ErrPriorsMismatch)
	}

	alg := &algebra{
		labels: append([]string(nil), labels...),
		priors: priors,
		masks:  make([]Code, n),
		index:  make(map[string]Code, n),
		top:    topMask(n),
	}
	fp := lattice.NewFingerprint("powerset").Int(n)
	for i, label := range alg.labels {
		alg.masks[i] = uint128.From64(1).Lsh(uint(i))
		if _, dup := alg.index[label]; !dup {
			alg.index[label] = alg.masks[i]
		}
		fp.String(label).Float(priors[i])
	}

	p := &Powerset{Base: lattice.NewBase[Code](fp.Sum(), alg), alg: alg}
	if n < 63 && 1<<n <= o.iterationLimit {
		p.order = enumerate(alg.masks)
	}

	return p, nil
}

// topMask returns the mask with the n low bits set.
func topMask(n int) Code {
	if n >= MaxLeaves {
		return uint128.Max
	}

	return uint128.From64(1).Lsh(uint(n)).Sub64(1)
}

// enumerate lists every subset with the subset-doubling recurrence: after
// handling leaf i, the sequence is extended by each previous subset OR leaf i.
// Every subset therefore appears after all of its strict subsets.
func enumerate(masks []Code) []Code {
	order := make([]Code, 1, 1<<len(masks))
	order[0] = uint128.Zero
	for _, bit := range masks {
		k := len(order)
		for j := 0; j < k; j++ {
			order = append(order, order[j].Or(bit))
		}
	}

	return order
}

// Len returns the number of leaves.
func (p *Powerset) Len() int { return len(p.alg.labels) }

// Labels returns a copy of the leaf labels in index order.
func (p *Powerset) Labels() []string { return append([]string(nil), p.alg.labels...) }

// Not returns the complement of a.
func (p *Powerset) Not(a lattice.SafeElement[Code]) (lattice.SafeElement[Code], error) {
	if a.Hash() != p.Hash() {
		return lattice.SafeElement[Code]{}, lattice.ErrElementNotInLattice
	}

	return p.UnsafeNot(a), nil
}

// UnsafeNot is Not without the hash check.
func (p *Powerset) UnsafeNot(a lattice.SafeElement[Code]) lattice.SafeElement[Code] {
	return lattice.Unchecked(a.Code().Xor(p.alg.top), p.Hash())
}

// BottomToTop returns every subset, each after all of its strict subsets.
func (p *Powerset) BottomToTop() ([]lattice.SafeElement[Code], error) {
	if p.order == nil {
		return nil, fmt.Errorf("powerset of %d leaves: %w", p.Len(), lattice.ErrTooLargeToIterate)
	}
	out := make([]lattice.SafeElement[Code], len(p.order))
	for i, code := range p.order {
		out[i] = lattice.Unchecked(code, p.Hash())
	}

	return out, nil
}

// TopToBottom returns BottomToTop reversed.
func (p *Powerset) TopToBottom() ([]lattice.SafeElement[Code], error) {
	out, err := p.BottomToTop()
	if err != nil {
		return nil, err
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out, nil
}

// Leaves returns the singletons in index order.
func (p *Powerset) Leaves() []lattice.SafeElement[Code] {
	out := make([]lattice.SafeElement[Code], len(p.alg.masks))
	for i, m := range p.alg.masks {
		out[i] = lattice.Unchecked(m, p.Hash())
	}

	return out
}

// WeightedLeaves returns the singletons with their priors.
func (p *Powerset) WeightedLeaves() []lattice.WeightedLeaf[Code] {
	out := make([]lattice.WeightedLeaf[Code], len(p.alg.masks))
	for i, m := range p.alg.masks {
		out[i] = lattice.WeightedLeaf[Code]{Element: lattice.Unchecked(m, p.Hash()), Weight: p.alg.priors[i]}
	}

	return out
}

// Leaf returns the singleton of leaf i.
func (p *Powerset) Leaf(i int) (lattice.SafeElement[Code], error) {
	if i < 0 || i >= len(p.alg.masks) {
		return lattice.SafeElement[Code]{}, fmt.Errorf("Leaf(%d): %w", i, lattice.ErrLeafOutOfRange)
	}

	return lattice.Unchecked(p.alg.masks[i], p.Hash()), nil
}

// algebra is the unchecked bitmask algebra behind Powerset.
type algebra struct {
	labels []string
	priors []float64
	masks  []Code          // masks[i] = 1 << i
	index  map[string]Code // first leaf carrying each label
	top    Code
}

func (a *algebra) Bottom() Code { return uint128.Zero }

func (a *algebra) Top() Code { return a.top }

func (a *algebra) Contains(code Code) bool { return code.And(a.top.Xor(uint128.Max)).IsZero() }

func (a *algebra) Meet(x, y Code) Code { return x.And(y) }

func (a *algebra) Join(x, y Code) Code { return x.Or(y) }

func (a *algebra) Format(code Code) string {
	switch code {
	case uint128.Zero:
		return lattice.BottomGlyph
	case a.top:
		return lattice.TopGlyph
	}
	var sb strings.Builder
	for i, m := range a.masks {
		if code.And(m).IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(lattice.Separator)
		}
		sb.WriteString(a.labels[i])
	}

	return sb.String()
}

func (a *algebra) Parse(text string) (Code, error) {
	return lattice.ParseJoined[Code](text, a, func(label string) (Code, bool) {
		c, ok := a.index[label]
		return c, ok
	})
}
