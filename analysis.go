package suftree

import "sort"

// computeC is a post-order walk assigning each node's C: the number of
// distinct sequence ids occurring at leaves in its subtree. See
// [Gusfield1997] §7.6.
func (n *Node[S, ID]) computeC() map[ID]struct{} {
	if n.leaf {
		n.c = 1
		return map[ID]struct{}{n.seqID: {}}
	}

	ids := make(map[ID]struct{})
	for _, child := range n.children {
		for id := range child.computeC() {
			ids[id] = struct{}{}
		}
	}
	n.c = len(ids)
	return ids
}

// computeLeftDiverse is a post-order walk assigning each internal node's
// left-diversity. A leaf at string position 0 has no left character and is
// reported to its parent as unconditionally diverse (nil); any other leaf
// contributes the singleton set of its one left character. An internal
// node is left-diverse if any child is diverse, or if the union of
// children's left-character sets has more than one member. See
// [Gusfield1997] §7.12.3.
func (n *Node[S, ID]) computeLeftDiverse() map[glyph[S]]struct{} {
	if n.leaf {
		if n.path.start == 0 {
			return nil
		}
		return map[glyph[S]]struct{}{n.path.seq.at(n.path.start - 1): {}}
	}

	leftChars := make(map[glyph[S]]struct{})
	diverse := false
	for _, child := range n.children {
		lc := child.computeLeftDiverse()
		if lc == nil {
			diverse = true
			continue
		}
		for k := range lc {
			leftChars[k] = struct{}{}
		}
	}
	if len(leftChars) > 1 {
		diverse = true
	}
	n.isLeftDiverse = diverse
	if diverse {
		return nil
	}
	return leftChars
}

// CommonSubstring is one row of the common-substrings table: the length L
// of the longest substring common to at least K of the tree's sequences,
// and a Path spelling such a substring.
type CommonSubstring[S comparable, ID comparable] struct {
	K    int
	L    int
	Path Path[S, ID]
}

// CommonSubstrings returns, for every k from the number of sequences in the
// tree down to 2, the length of the longest substring common to at least k
// sequences and a path realising it, sorted ascending by k. See
// [Gusfield1997] §7.6.
func (t *Tree[S, ID]) CommonSubstrings() []CommonSubstring[S, ID] {
	t.root.computeC()

	type entry struct {
		depth int
		path  Path[S, ID]
		found bool
	}
	best := make(map[int]*entry)

	var visit func(n *Node[S, ID])
	visit = func(n *Node[S, ID]) {
		if n.leaf {
			return
		}
		k := n.c
		e, ok := best[k]
		if !ok {
			e = &entry{}
			best[k] = e
		}
		// Equal depths tie-break on span order, not child-map iteration order.
		if n.StringDepth() > e.depth || (n.StringDepth() == e.depth && e.found && spanLess(n.path, e.path)) {
			e.depth = n.StringDepth()
			e.path = concatPrefix(n.path, n.StringDepth())
			e.found = true
		}
		for _, child := range n.children {
			visit(child)
		}
	}
	visit(t.root)

	k := t.root.c

	var out []CommonSubstring[S, ID]
	maxLen := 0
	maxPath := concatPrefix(t.root.path, 0)
	for ; k >= 2; k-- {
		if e, ok := best[k]; ok && e.found && e.depth > maxLen {
			maxLen = e.depth
			maxPath = e.path
		}
		out = append(out, CommonSubstring[S, ID]{K: k, L: maxLen, Path: maxPath})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].K < out[j].K })
	return out
}

// MaximalRepeat is one maximal repeat found in the tree: a substring that
// occurs in a maximal pair, together with the number of distinct sequences
// it occurs in.
type MaximalRepeat[S comparable, ID comparable] struct {
	C    int
	Path Path[S, ID]
}

// MaximalRepeats returns every maximal repeat in the tree: every left-diverse
// internal node's path and C value. See [Gusfield1997] §7.12.
func (t *Tree[S, ID]) MaximalRepeats() []MaximalRepeat[S, ID] {
	t.root.computeC()
	t.root.computeLeftDiverse()

	var out []MaximalRepeat[S, ID]
	var visit func(n *Node[S, ID])
	visit = func(n *Node[S, ID]) {
		if n.isLeftDiverse {
			out = append(out, MaximalRepeat[S, ID]{C: n.c, Path: n.path})
		}
		for _, child := range n.children {
			visit(child)
		}
	}
	for _, child := range t.root.children {
		visit(child)
	}

	// Child-map iteration order is unspecified; the result order is not.
	sort.Slice(out, func(i, j int) bool {
		if out[i].C != out[j].C {
			return out[i].C < out[j].C
		}
		return spanLess(out[i].Path, out[j].Path)
	})
	return out
}

// spanLess orders two path-spans by owning-sequence insertion order, then
// start offset, then length. Symbols themselves are only required to be
// comparable, not ordered, so spans are the only total order available.
func spanLess[S comparable, ID comparable](a, b Path[S, ID]) bool {
	if a.seq.ord != b.seq.ord {
		return a.seq.ord < b.seq.ord
	}
	if a.start != b.start {
		return a.start < b.start
	}
	return a.Len() < b.Len()
}
