package suftree

import (
	"iter"
	"time"
)

// Tree is a generalized suffix tree: a compact trie of all suffixes of every
// sequence added to it. The zero value is not usable; construct one with
// New. A Tree is safe for concurrent read-only use (queries, traversals, LCA
// lookups after PrepareLCA) once construction has stopped, but Add/AddSeq
// assume exclusive access. PrepareLCA, CommonSubstrings and MaximalRepeats
// write per-node analysis fields and are not read-only.
type Tree[S comparable, ID comparable] struct {
	root *Node[S, ID]
	aux  *Node[S, ID]

	cfg       *treeConfig
	sequences map[ID]*sequence[S, ID]
	order     []ID
	nextOrd   uint64

	lcaReady bool
	lTable   map[uint32]*Node[S, ID]
	nodemap  map[ID]map[int]*Node[S, ID]
}

// New creates an empty generalized suffix tree.
func New[S comparable, ID comparable](opts ...TreeOption) *Tree[S, ID] {
	t := &Tree[S, ID]{
		cfg:       newTreeConfig(opts),
		sequences: make(map[ID]*sequence[S, ID]),
	}

	rootSeq := &sequence[S, ID]{}
	t.root = newInternal[S, ID](nil, Path[S, ID]{seq: rootSeq})
	t.root.isRoot = true
	t.aux = newInternal[S, ID](nil, Path[S, ID]{seq: rootSeq})
	t.root.parent = t.aux
	t.root.suffixLink = t.aux

	return t
}

// Root returns the tree's root node.
func (t *Tree[S, ID]) Root() *Node[S, ID] {
	return t.root
}

// Add builds every suffix of seq into the tree under the given id, using the
// tree's default builder unless overridden with WithBuilder. id must not
// already be present. A failed or aborted build is rolled back: the tree is
// left exactly as it was before the call and the id is not retained.
func (t *Tree[S, ID]) Add(id ID, seq []S, opts ...BuildOption) error {
	if _, exists := t.sequences[id]; exists {
		return ErrSequenceExists
	}

	cfg := newBuildConfig(t.cfg.defaultKind, opts)
	start := time.Now()
	q := t.newSequence(id, len(seq)+1)
	x := &txn[S, ID]{}

	var err error
	switch cfg.kind {
	case BuilderNaive, BuilderMcCreight:
		// The offline builders see the whole terminated buffer up front;
		// Ukkonen appends to it one glyph per step instead.
		for _, s := range seq {
			q.glyphs = append(q.glyphs, userGlyph[S](s))
		}
		q.glyphs = append(q.glyphs, terminatorGlyph[S](q.ord))
		q.phase = len(q.glyphs)
		if cfg.kind == BuilderNaive {
			err = buildNaive(t, q, cfg, x)
		} else {
			err = buildMcCreight(t, q, cfg, x)
		}
	default:
		err = t.buildUkkonenBatch(q, seq, cfg, x)
	}

	t.lcaReady = false
	logBuild(t.cfg.log, cfg.kind, id, start, err)
	if err != nil {
		x.rollback()
		delete(t.sequences, id)
		return err
	}

	t.order = append(t.order, id)
	return nil
}

// AddSeq streams seq into the tree symbol by symbol via Ukkonen's online
// algorithm, the only builder able to consume a pull-style iterator: each
// pulled symbol is fully processed before the next one is requested.
// Passing WithBuilder for anything but BuilderUkkonen returns
// ErrStreamingBuilder. As with Add, a failed or aborted build is rolled
// back and the id is not retained.
func (t *Tree[S, ID]) AddSeq(id ID, seq iter.Seq[S], opts ...BuildOption) error {
	if _, exists := t.sequences[id]; exists {
		return ErrSequenceExists
	}

	cfg := newBuildConfig(BuilderUkkonen, opts)
	if cfg.kindSet && cfg.kind != BuilderUkkonen {
		return ErrStreamingBuilder
	}

	start := time.Now()
	q := t.newSequence(id, 0)
	x := &txn[S, ID]{}
	b := newUkkonenBuilder(t, q, x)

	var err error
	i := 0
	for s := range seq {
		if err = cfg.gate(i); err != nil {
			break
		}
		b.step(userGlyph[S](s))
		i++
	}
	if err == nil {
		if err = cfg.gate(i); err == nil {
			b.step(terminatorGlyph[S](q.ord))
		}
	}

	t.lcaReady = false
	logBuild(t.cfg.log, BuilderUkkonen, id, start, err)
	if err != nil {
		x.rollback()
		delete(t.sequences, id)
		return err
	}

	t.order = append(t.order, id)
	return nil
}

func (t *Tree[S, ID]) newSequence(id ID, capHint int) *sequence[S, ID] {
	q := &sequence[S, ID]{id: id, ord: t.nextOrd, glyphs: make([]glyph[S], 0, capHint)}
	t.nextOrd++
	t.sequences[id] = q
	return q
}

func (t *Tree[S, ID]) buildUkkonenBatch(q *sequence[S, ID], seq []S, cfg *buildConfig, x *txn[S, ID]) error {
	b := newUkkonenBuilder(t, q, x)
	for i, s := range seq {
		if err := cfg.gate(i); err != nil {
			return err
		}
		b.step(userGlyph[S](s))
	}
	if err := cfg.gate(len(seq)); err != nil {
		return err
	}
	b.step(terminatorGlyph[S](q.ord))
	return nil
}

// SequenceIDs returns the ids of every sequence added to the tree, in
// insertion order.
func (t *Tree[S, ID]) SequenceIDs() []ID {
	out := make([]ID, len(t.order))
	copy(out, t.order)
	return out
}

// Sequence returns the symbols registered under id, without the trailing
// terminator, or ErrUnknownSequence.
func (t *Tree[S, ID]) Sequence(id ID) ([]S, error) {
	q, ok := t.sequences[id]
	if !ok {
		return nil, ErrUnknownSequence
	}
	out := make([]S, 0, q.length()-1)
	for _, g := range q.glyphs {
		if g.terminator {
			break
		}
		out = append(out, g.sym)
	}
	return out, nil
}

// Slice returns sequence[start:end) of the sequence registered under id.
// The span must satisfy 0 <= start <= end <= length(sequence), where the
// length excludes the terminator; otherwise Slice returns ErrInvalidSpan.
func (t *Tree[S, ID]) Slice(id ID, start, end int) ([]S, error) {
	sym, err := t.Sequence(id)
	if err != nil {
		return nil, err
	}
	if start < 0 || start > end || end > len(sym) {
		return nil, ErrInvalidSpan
	}
	return sym[start:end], nil
}

// queryPath wraps a transient, unterminated query sequence so the shared
// findPath machinery can be reused for Find/FindAll/FindID.
func (t *Tree[S, ID]) queryPath(sym []S) Path[S, ID] {
	q := &sequence[S, ID]{glyphs: make([]glyph[S], len(sym))}
	for i, s := range sym {
		q.glyphs[i] = userGlyph[S](s)
	}
	q.phase = len(q.glyphs)
	return Path[S, ID]{seq: q, start: 0, end: len(q.glyphs)}
}

// Find reports whether seq occurs anywhere in the tree.
func (t *Tree[S, ID]) Find(seq []S) bool {
	q := t.queryPath(seq)
	_, matched, _ := t.root.findPath(q)
	return matched == q.Len()
}

// Occurrence is one occurrence of a query, reported by FindAll: the id of
// the sequence it occurs in, and the full span of the leaf beneath the
// match (i.e. the suffix starting at that occurrence, terminator included).
type Occurrence[S comparable, ID comparable] struct {
	SequenceID ID
	Span       Path[S, ID]
}

// FindAll returns every occurrence of seq in the tree, one entry per leaf
// beneath the match's end. Returns nil if seq does not occur.
func (t *Tree[S, ID]) FindAll(seq []S) []Occurrence[S, ID] {
	q := t.queryPath(seq)
	node, matched, child := t.root.findPath(q)
	if matched < q.Len() {
		return nil
	}
	target := node
	if child != nil {
		target = child
	}

	var out []Occurrence[S, ID]
	target.preOrder(func(n *Node[S, ID]) bool {
		if n.leaf {
			out = append(out, Occurrence[S, ID]{SequenceID: n.seqID, Span: n.path})
		}
		return true
	})
	return out
}

// FindID reports whether seq occurs in the tree within the sequence
// registered under id.
func (t *Tree[S, ID]) FindID(id ID, seq []S) bool {
	for _, occ := range t.FindAll(seq) {
		if occ.SequenceID == id {
			return true
		}
	}
	return false
}

// PreOrder ranges over every node in the tree, visiting each before its
// children. Child order within a node follows child-map iteration order,
// which is unspecified; sort explicitly if deterministic order matters.
func (t *Tree[S, ID]) PreOrder() iter.Seq[*Node[S, ID]] {
	return func(yield func(*Node[S, ID]) bool) {
		t.root.preOrder(yield)
	}
}

// PostOrder ranges over every node in the tree, visiting each after its
// children.
func (t *Tree[S, ID]) PostOrder() iter.Seq[*Node[S, ID]] {
	return func(yield func(*Node[S, ID]) bool) {
		t.root.postOrder(yield)
	}
}
