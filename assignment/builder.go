// SPDX-License-Identifier: MIT
// Builder: the mutable side of a mass assignment.
// Entries live in a min-heap keyed by weight plus a code index, so Push and
// Remove are O(log n) and Prune always merges the two lightest entries.
// Weights are validated on entry; NaN, ±Inf and negatives are ErrBadWeight.

package assignment

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evidence/lattice"
)

// Epsilon is the weight at or below which an entry is considered absent.
const Epsilon = 1e-8

// Sentinel errors for builder operations.
var (
	// ErrHashMismatch indicates an element from another lattice.
	ErrHashMismatch = errors.New("assignment: lattice hash mismatch")

	// ErrBadWeight indicates a NaN, infinite or negative weight.
	ErrBadWeight = errors.New("assignment: non finite or negative weights are forbidden")

	// ErrZeroWeight indicates Normalize on a builder whose weights sum to zero.
	ErrZeroWeight = errors.New("assignment: cumulative weight is zero")
)

const panicDesync = "assignment: queue and index out of sync"

// Entry is one weighted element.
type Entry[X lattice.Element[X]] struct {
	Element lattice.SafeElement[X]
	Weight  float64
}

// Builder accumulates weighted elements of one lattice.
// A Builder is owned by a single computation and is not safe for concurrent use.
type Builder[X lattice.Element[X]] struct {
	hash      lattice.Hash
	lengthMid int
	lengthMax int
	queue     queue[X]
	index     map[X]*item[X]
}

// NewBuilder returns an empty builder for the lattice identified by hash.
// lengthMid is floored at 1 and lengthMax at lengthMid.
func NewBuilder[X lattice.Element[X]](hash lattice.Hash, lengthMid, lengthMax int) *Builder[X] {
	lengthMid = max(lengthMid, 1)
	lengthMax = max(lengthMax, lengthMid)

	return &Builder[X]{
		hash:      hash,
		lengthMid: lengthMid,
		lengthMax: lengthMax,
		index:     make(map[X]*item[X]),
	}
}

// Hash returns the hash of the lattice the builder accepts elements from.
func (b *Builder[X]) Hash() lattice.Hash { return b.hash }

// Len returns the number of stored entries.
func (b *Builder[X]) Len() int { return len(b.queue) }

// Thresholds returns lengthMid and lengthMax.
func (b *Builder[X]) Thresholds() (lengthMid, lengthMax int) { return b.lengthMid, b.lengthMax }

// Weight returns the stored weight of e.
func (b *Builder[X]) Weight(e lattice.SafeElement[X]) (float64, bool) {
	if e.Hash() != b.hash {
		return 0, false
	}
	it, ok := b.index[e.Code()]
	if !ok {
		return 0, false
	}

	return it.weight, true
}

// Push adds w to the weight of e. It reports false, without error, when w is
// at or below Epsilon and nothing was stored.
//
// Complexity: O(log n) for n stored entries.
//
// Errors: ErrHashMismatch, ErrBadWeight.
func (b *Builder[X]) Push(e lattice.SafeElement[X], w float64) (bool, error) {
	if e.Hash() != b.hash {
		return false, fmt.Errorf("Push: %w", ErrHashMismatch)
	}

	return b.UnsafePush(e, w)
}

// UnsafePush is Push without the hash check.
//
// Errors: ErrBadWeight.
func (b *Builder[X]) UnsafePush(e lattice.SafeElement[X], w float64) (bool, error) {
	if !validWeight(w) {
		return false, fmt.Errorf("Push(%v): %w", w, ErrBadWeight)
	}
	if w <= Epsilon {
		return false, nil
	}
	b.add(e, w)

	return true, nil
}

// add accumulates a validated weight.
func (b *Builder[X]) add(e lattice.SafeElement[X], w float64) {
	if it, ok := b.index[e.Code()]; ok {
		it.weight += w
		heap.Fix(&b.queue, it.pos)
		return
	}
	it := &item[X]{element: e, weight: w}
	heap.Push(&b.queue, it)
	b.index[e.Code()] = it
}

// Remove deletes e and returns its entry.
func (b *Builder[X]) Remove(e lattice.SafeElement[X]) (Entry[X], bool) {
	if e.Hash() != b.hash {
		return Entry[X]{}, false
	}
	it, ok := b.index[e.Code()]
	if !ok {
		return Entry[X]{}, false
	}
	heap.Remove(&b.queue, it.pos)
	delete(b.index, e.Code())

	return Entry[X]{Element: it.element, Weight: it.weight}, true
}

// Prune merges the two lightest entries into pruner(x, y) until at most
// lengthMid remain. It does nothing unless more than lengthMax are stored.
// Total weight is unchanged.
//
// Complexity: O((n − lengthMid) · log n) heap operations plus one pruner call
// per merge, for n stored entries.
//
// Errors: none; pruner must return an element of the builder's lattice.
func (b *Builder[X]) Prune(pruner func(x, y lattice.SafeElement[X]) lattice.SafeElement[X]) {
	if len(b.queue) <= b.lengthMax {
		return
	}
	for len(b.queue) > b.lengthMid {
		x := b.pop()
		y := b.pop()
		b.add(pruner(x.element, y.element), x.weight+y.weight)
	}
}

func (b *Builder[X]) pop() *item[X] {
	it := heap.Pop(&b.queue).(*item[X])
	delete(b.index, it.element.Code())

	return it
}

// Scale multiplies every weight by k.
func (b *Builder[X]) Scale(k float64) error {
	return b.Map(func(w float64) float64 { return w * k })
}

// NegShift subtracts k from every weight.
func (b *Builder[X]) NegShift(k float64) error {
	return b.Map(func(w float64) float64 { return w - k })
}

// Map replaces every weight w by f(w). Results in [-Epsilon, Epsilon] are
// dropped. Nothing changes when any result is non-finite or below -Epsilon.
//
// Complexity: O(n) calls to f and O(n) to rebuild the heap.
//
// Errors: ErrBadWeight, naming the first offending weight.
func (b *Builder[X]) Map(f func(w float64) float64) error {
	next := make([]float64, len(b.queue))
	for i, it := range b.queue {
		w := f(it.weight)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < -Epsilon {
			return fmt.Errorf("Map: %v → %v: %w", it.weight, w, ErrBadWeight)
		}
		next[i] = w
	}

	kept := b.queue[:0]
	for i, it := range b.queue {
		if next[i] <= Epsilon {
			delete(b.index, it.element.Code())
			continue
		}
		it.weight = next[i]
		it.pos = len(kept)
		kept = append(kept, it)
	}
	for i := len(kept); i < len(b.queue); i++ {
		b.queue[i] = nil
	}
	b.queue = kept
	heap.Init(&b.queue)

	return nil
}

// CumulWeight returns the sum of all weights.
//
// Complexity: O(n).
//
// Errors: ErrBadWeight when a stored weight is no longer valid.
func (b *Builder[X]) CumulWeight() (float64, error) {
	var sum float64
	for _, it := range b.queue {
		if !validWeight(it.weight) {
			return 0, fmt.Errorf("CumulWeight: %w", ErrBadWeight)
		}
		sum += it.weight
	}

	return sum, nil
}

// Normalize scales the weights so that they sum to 1.
//
// Complexity: O(n).
//
// Errors: ErrZeroWeight, ErrBadWeight.
func (b *Builder[X]) Normalize() error {
	sum, err := b.CumulWeight()
	if err != nil {
		return err
	}
	if sum <= 0 {
		return ErrZeroWeight
	}

	return b.Map(func(w float64) float64 { return w / sum })
}

// Freeze returns an immutable snapshot of the builder.
// The builder stays usable.
func (b *Builder[X]) Freeze() *Assignment[X] {
	if len(b.queue) != len(b.index) {
		panic(panicDesync)
	}
	elements := make(map[X]float64, len(b.queue))
	for _, it := range b.queue {
		elements[it.element.Code()] = it.weight
	}

	return &Assignment[X]{elements: elements, hash: b.hash}
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
