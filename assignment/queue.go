// SPDX-License-Identifier: MIT

package assignment

import "github.com/katalvlaran/evidence/lattice"

// item is one weighted element held by a Builder.
type item[X lattice.Element[X]] struct {
	element lattice.SafeElement[X]
	weight  float64
	pos     int // index in the queue, maintained by Swap/Push/Pop
}

// queue is a min-heap of *item ordered by weight, then by element code.
// The code tie-break makes pop order independent of insertion history.
type queue[X lattice.Element[X]] []*item[X]

// Len returns the number of items in the heap.
func (q queue[X]) Len() int { return len(q) }

// Less orders lighter items first.
func (q queue[X]) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}

	return q[i].element.Cmp(q[j].element) < 0
}

// Swap swaps two items and keeps their positions current.
func (q queue[X]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].pos = i
	q[j].pos = j
}

// Push adds x, which must be an *item, at the end of the heap.
// Called by heap.Push.
func (q *queue[X]) Push(x any) {
	it := x.(*item[X])
	it.pos = len(*q)
	*q = append(*q, it)
}

// Pop removes and returns the last item. Called by heap.Pop.
func (q *queue[X]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.pos = -1
	*q = old[:n-1]

	return it
}
