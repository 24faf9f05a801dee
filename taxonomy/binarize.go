// SPDX-License-Identifier: MIT

package taxonomy

// nodeKind tags binary-tree nodes as declared taxa or synthetic joints.
type nodeKind uint8

const (
	realNode nodeKind = iota
	syntheticNode
)

// bnode is a node of the binarized tree.
type bnode struct {
	kind     nodeKind
	name     string  // realNode only
	weight   float64 // real leaves only
	leaf     bool
	height   int      // 0 for leaves
	children []*bnode // at most two
}

// binarize converts a validated declarative tree into a binary tree.
//
// Children of every node are reduced by repeatedly replacing the two
// shallowest subtrees (earliest position wins ties) with a synthetic node one
// level above the taller of them, placed at the position of the first.
//
// Complexity: O(T·k) for T taxa and fan-out k.
func binarize(b Builder) *bnode {
	if b.leaf {
		return &bnode{kind: realNode, name: b.name, weight: b.weight, leaf: true}
	}

	subs := make([]*bnode, len(b.children))
	for i, c := range b.children {
		subs[i] = binarize(c)
	}
	for len(subs) > 2 {
		lo, hi := shallowestPair(subs)
		merged := &bnode{
			kind:     syntheticNode,
			children: []*bnode{subs[lo], subs[hi]},
			height:   max(subs[lo].height, subs[hi].height) + 1,
		}
		subs[lo] = merged
		subs = append(subs[:hi], subs[hi+1:]...)
	}

	n := &bnode{kind: realNode, name: b.name, children: subs}
	for _, c := range subs {
		n.height = max(n.height, c.height+1)
	}

	return n
}

// shallowestPair returns the positions lo < hi of the two lowest subtrees.
func shallowestPair(subs []*bnode) (lo, hi int) {
	first := 0
	for i := 1; i < len(subs); i++ {
		if subs[i].height < subs[first].height {
			first = i
		}
	}
	second := -1
	for i := range subs {
		if i == first {
			continue
		}
		if second < 0 || subs[i].height < subs[second].height {
			second = i
		}
	}
	if first < second {
		return first, second
	}

	return second, first
}
