package suftree

import (
	"iter"

	"github.com/arborists/suftree/internal/iterutil"
)

// Node is either an internal node or a leaf of the tree. The two variants
// share parent, path-span and LCA bookkeeping; leaf-only and internal-only
// fields simply sit unused on the other variant, dispatched on the leaf
// flag, rather than through a virtual-dispatch hierarchy.
type Node[S comparable, ID comparable] struct {
	parent     *Node[S, ID]
	path       Path[S, ID]
	suffixLink *Node[S, ID]
	isRoot     bool

	// internal-node fields
	children      map[glyph[S]]*Node[S, ID]
	isLeftDiverse bool
	c             int

	// leaf-only fields
	leaf  bool
	seqID ID

	// LCA fields, see lca.go
	lcaID uint32
	i     uint32
	a     uint32
}

func newInternal[S comparable, ID comparable](parent *Node[S, ID], path Path[S, ID]) *Node[S, ID] {
	return &Node[S, ID]{
		parent:   parent,
		path:     path,
		children: make(map[glyph[S]]*Node[S, ID]),
	}
}

func newLeaf[S comparable, ID comparable](parent *Node[S, ID], path Path[S, ID], seqID ID) *Node[S, ID] {
	return &Node[S, ID]{
		parent: parent,
		path:   path,
		leaf:   true,
		seqID:  seqID,
	}
}

// IsLeaf reports whether the node is a leaf.
func (n *Node[S, ID]) IsLeaf() bool {
	return n.leaf
}

// IsInternal reports whether the node is an internal node.
func (n *Node[S, ID]) IsInternal() bool {
	return !n.leaf
}

// IsRoot reports whether the node is the tree's root.
func (n *Node[S, ID]) IsRoot() bool {
	return n.isRoot
}

// StringDepth returns the node's string-depth: the length of its path-label.
func (n *Node[S, ID]) StringDepth() int {
	return n.path.Len()
}

// Span returns the node's path-span.
func (n *Node[S, ID]) Span() Path[S, ID] {
	return n.path
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[S, ID]) Parent() *Node[S, ID] {
	if n.isRoot {
		return nil
	}
	return n.parent
}

// SuffixLink returns the node's suffix link, or nil if none has been set.
// Leaves never carry one, and internal nodes created by the naive builder
// are left without one.
func (n *Node[S, ID]) SuffixLink() *Node[S, ID] {
	return n.suffixLink
}

// SequenceID returns the id of the sequence that created this leaf, and
// true. It returns the zero ID and false for an internal node.
func (n *Node[S, ID]) SequenceID() (ID, bool) {
	if !n.leaf {
		var zero ID
		return zero, false
	}
	return n.seqID, true
}

// C returns the number of distinct sequence ids occurring at leaves in this
// node's subtree, valid only after CommonSubstrings or MaximalRepeats has
// run (both recompute it).
func (n *Node[S, ID]) C() int {
	return n.c
}

// IsLeftDiverse reports whether the node is left-diverse, valid only after
// MaximalRepeats has run (it recomputes it). A leaf is never left-diverse.
func (n *Node[S, ID]) IsLeftDiverse() bool {
	return n.isLeftDiverse
}

// LCAID returns the node's depth-first pre-order number, valid only after
// PrepareLCA has run.
func (n *Node[S, ID]) LCAID() uint32 {
	return n.lcaID
}

// I returns the node's Schieber-Vishkin I value, valid only after
// PrepareLCA has run. See lca.go.
func (n *Node[S, ID]) I() uint32 {
	return n.i
}

// A returns the node's Schieber-Vishkin A value, valid only after
// PrepareLCA has run. See lca.go.
func (n *Node[S, ID]) A() uint32 {
	return n.a
}

// childSeq2 ranges over the node's children keyed by their edge's first
// glyph. Unexported: glyph is an internal alphabet-with-terminator type.
func (n *Node[S, ID]) childSeq2() iter.Seq2[glyph[S], *Node[S, ID]] {
	return func(yield func(glyph[S], *Node[S, ID]) bool) {
		for k, v := range n.children {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Children ranges over the node's children in unspecified order. Callers
// needing a deterministic order must sort explicitly; construction itself
// never depends on child-map iteration order.
func (n *Node[S, ID]) Children() iter.Seq[*Node[S, ID]] {
	return iterutil.Right(n.childSeq2())
}

// NumChildren returns the number of children of an internal node.
func (n *Node[S, ID]) NumChildren() int {
	return len(n.children)
}

// findPath searches for q starting at n, which must already be matched up
// to n's own string-depth. It returns the deepest fully matched node, the
// matched length, and - if the match stopped strictly inside a child's edge
// - that child.
func (n *Node[S, ID]) findPath(q Path[S, ID]) (node *Node[S, ID], matched int, child *Node[S, ID]) {
	node = n
	matched = node.path.Len()
	for matched < q.Len() {
		next, ok := node.children[q.at(matched)]
		if !ok {
			return node, matched, nil
		}
		length := q.compare(next.path, matched)
		matched += length
		if matched < next.path.Len() {
			return node, matched, next
		}
		node = next
	}
	return node, matched, nil
}

// preOrder visits n before its children, stopping as soon as yield returns
// false. It reports whether traversal should continue into the caller.
func (n *Node[S, ID]) preOrder(yield func(*Node[S, ID]) bool) bool {
	if !yield(n) {
		return false
	}
	if !n.leaf {
		for _, c := range n.children {
			if !c.preOrder(yield) {
				return false
			}
		}
	}
	return true
}

// postOrder visits n after its children, stopping as soon as yield returns
// false.
func (n *Node[S, ID]) postOrder(yield func(*Node[S, ID]) bool) bool {
	if !n.leaf {
		for _, c := range n.children {
			if !c.postOrder(yield) {
				return false
			}
		}
	}
	return yield(n)
}
