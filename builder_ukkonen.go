package suftree

// ukkonenBuilder holds the online construction state for one sequence: the
// canonical reference pair (s, start) - the implicit end is always the
// sequence's current phase - and the auxiliary node used to simplify the
// very first extensions. Follows the update/canonize/test-and-split
// presentation of [Ukkonen1995], with plain integer offsets into the
// sequence buffer as the reference-pair representation.
type ukkonenBuilder[S comparable, ID comparable] struct {
	tree *Tree[S, ID]
	seq  *sequence[S, ID]
	txn  *txn[S, ID]
	root *Node[S, ID]
	aux  *Node[S, ID]

	s     *Node[S, ID]
	start int
}

// newUkkonenBuilder wires the tree's root to the auxiliary node the way
// Ukkonen's algorithm needs - root.suffixLink = aux, so that canonize can
// walk off the top of the tree without a special case for the very first
// extensions of every sequence.
func newUkkonenBuilder[S comparable, ID comparable](t *Tree[S, ID], q *sequence[S, ID], x *txn[S, ID]) *ukkonenBuilder[S, ID] {
	x.setSuffixLink(t.root, t.aux)
	x.setParent(t.root, t.aux)
	return &ukkonenBuilder[S, ID]{
		tree: t,
		seq:  q,
		txn:  x,
		root: t.root,
		aux:  t.aux,
		s:    t.root,
	}
}

// step processes one incoming glyph: it extends the phase counter (Gusfield's
// "Trick 3": every open leaf's effective end advances for free), then runs
// one round of update/canonize, advancing the canonical reference pair.
func (b *ukkonenBuilder[S, ID]) step(g glyph[S]) {
	b.seq.glyphs = append(b.seq.glyphs, g)
	b.seq.phase = len(b.seq.glyphs)
	b.s, b.start = b.update(b.s, b.start, b.seq.phase)
	b.s, b.start = b.canonize(b.s, b.start, b.seq.phase)
}

// transition returns the child reached from s via the glyph at offset k of
// the sequence buffer, and the length of that edge. From the auxiliary
// node every symbol transitions to the root across a synthetic edge of
// length 1 - this is the trick that avoids special-casing the very first
// suffix of every sequence.
func (b *ukkonenBuilder[S, ID]) transition(s *Node[S, ID], k int) (child *Node[S, ID], edgeLen int, ok bool) {
	if s == b.aux {
		return b.root, 1, true
	}
	child, ok = s.children[b.seq.at(k)]
	if !ok {
		return nil, 0, false
	}
	return child, child.path.Len() - s.path.Len(), true
}

// canonize finds the canonical reference pair for (s, start, end): the
// closest explicit ancestor s' of the implicit state, together with the
// adjusted start such that (s', start, end) spans the same path.
func (b *ukkonenBuilder[S, ID]) canonize(s *Node[S, ID], start, end int) (*Node[S, ID], int) {
	if end <= start {
		return s, start
	}
	child, edgeLen, ok := b.transition(s, start)
	for ok && edgeLen <= end-start {
		start += edgeLen
		s = child
		if end <= start {
			break
		}
		child, edgeLen, ok = b.transition(s, start)
	}
	return s, start
}

// testAndSplit tests whether the implicit state at (s, start, end) already
// has an outgoing t-transition. If the reference pair's span is empty, it
// tests s's own children directly; otherwise it examines the symbol at the
// implied offset along the one relevant child edge, splitting that edge if
// it does not already branch on t.
func (b *ukkonenBuilder[S, ID]) testAndSplit(s *Node[S, ID], start, end int, t glyph[S]) (bool, *Node[S, ID]) {
	if end > start {
		child, ok := s.children[b.seq.at(start)]
		if !ok {
			return false, s
		}
		offset := end - start
		if child.path.at(s.path.Len()+offset) == t {
			return true, s
		}
		return false, b.txn.splitEdge(s, s.path.Len()+offset, child)
	}
	if s == b.aux {
		return true, s
	}
	if _, ok := s.children[t]; ok {
		return true, s
	}
	return false, s
}

// update inserts the ti-transitions for the newest symbol along the
// boundary path, attaching an open leaf at every non-endpoint reached and
// wiring suffix links for every internal node newly made explicit in the
// process, until an endpoint is found.
func (b *ukkonenBuilder[S, ID]) update(s *Node[S, ID], start, end int) (*Node[S, ID], int) {
	i := end - 1
	t := b.seq.at(i)
	oldR := b.root

	isEnd, r := b.testAndSplit(s, start, i, t)
	for !isEnd {
		// The suffix made of the terminator alone gets no leaf.
		if !(r == b.root && t.terminator) {
			leaf := newLeaf(r, Path[S, ID]{seq: b.seq, start: i - r.path.Len(), end: openEnd}, b.seq.id)
			b.txn.setChild(r, t, leaf)
		}

		if oldR != b.root {
			b.txn.setSuffixLink(oldR, r)
		}
		oldR = r

		s, start = b.canonize(s.suffixLink, start, i)
		isEnd, r = b.testAndSplit(s, start, i, t)
	}

	if oldR != b.root {
		b.txn.setSuffixLink(oldR, s)
	}
	return s, start
}
