package suftree

import "github.com/arborists/suftree/internal/bitops"

// PrepareLCA preprocesses a fully-built tree for constant-time lowest
// common ancestor queries via Schieber and Vishkin's reduction to a
// complete binary tree, and (re)builds the sequence/position nodemap.
// Any subsequent Add or AddSeq call invalidates the preprocessing; call
// PrepareLCA again before the next LCA query. See [SchieberVishkin1988].
func (t *Tree[S, ID]) PrepareLCA() {
	counter := uint32(1)
	var assignLCAID func(n *Node[S, ID])
	assignLCAID = func(n *Node[S, ID]) {
		n.lcaID = counter
		counter++
		for _, child := range n.children {
			assignLCAID(child)
		}
	}
	assignLCAID(t.root)

	t.lTable = make(map[uint32]*Node[S, ID])
	var computeIAndL func(n *Node[S, ID]) uint32
	computeIAndL = func(n *Node[S, ID]) uint32 {
		imax := n.lcaID
		for _, child := range n.children {
			ival := computeIAndL(child)
			if bitops.H(ival) > bitops.H(imax) {
				imax = ival
			}
		}
		n.i = imax
		t.lTable[imax] = n
		return imax
	}
	computeIAndL(t.root)

	var computeA func(n *Node[S, ID], acc uint32)
	computeA = func(n *Node[S, ID], acc uint32) {
		a := acc | (uint32(1) << uint(bitops.H(n.i)))
		n.a = a
		for _, child := range n.children {
			computeA(child, a)
		}
	}
	computeA(t.root, 0)

	t.nodemap = make(map[ID]map[int]*Node[S, ID])
	t.root.preOrder(func(n *Node[S, ID]) bool {
		if n.leaf {
			m, ok := t.nodemap[n.seqID]
			if !ok {
				m = make(map[int]*Node[S, ID])
				t.nodemap[n.seqID] = m
			}
			m[n.path.start] = n
		}
		return true
	})

	t.lcaReady = true
}

// LCA returns the lowest common ancestor of x and y: the deepest node that
// is an ancestor of both. PrepareLCA must have been called since the last
// mutation, or LCA returns ErrLCANotPrepared.
func (t *Tree[S, ID]) LCA(x, y *Node[S, ID]) (*Node[S, ID], error) {
	if !t.lcaReady {
		return nil, ErrLCANotPrepared
	}
	if x == y {
		return x, nil
	}

	k := bitops.Msb(x.i ^ y.i)
	mask := ^uint32(0) << uint(k+1)
	b := (x.i & mask) | (uint32(1) << uint(k))

	mask = ^uint32(0) << uint(bitops.H(b))
	j := bitops.H(x.a & y.a & mask)

	xbar := t.xyBar(x, j)
	ybar := t.xyBar(y, j)

	if xbar.lcaID < ybar.lcaID {
		return xbar, nil
	}
	return ybar, nil
}

// xyBar recovers x-bar (or y-bar) from n: the ancestor of n whose
// I-value's h equals j, the h-value of the LCA's I.
func (t *Tree[S, ID]) xyBar(n *Node[S, ID], j int) *Node[S, ID] {
	if bitops.H(n.a) == j {
		return n
	}
	mask := ^(^uint32(0) << uint(j))
	k := bitops.Msb(n.a & mask)
	mask = ^uint32(0) << uint(k+1)
	iw := (n.i & mask) | (uint32(1) << uint(k))
	return t.lTable[iw].parent
}

// Nodemap looks up the leaf representing the suffix starting at position
// start of the sequence registered under id. PrepareLCA must have been
// called since the last mutation.
func (t *Tree[S, ID]) Nodemap(id ID, start int) (*Node[S, ID], error) {
	if !t.lcaReady {
		return nil, ErrLCANotPrepared
	}
	m, ok := t.nodemap[id]
	if !ok {
		return nil, ErrUnknownSequence
	}
	n, ok := m[start]
	if !ok {
		return nil, ErrUnknownPosition
	}
	return n, nil
}
