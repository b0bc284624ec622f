package suftree

// openEnd marks a Path whose end is not a fixed offset but tracks the
// owning sequence's current construction phase. Only Ukkonen ever creates a
// Path in this state; it realises Gusfield's "Trick 3" without an aliased
// mutable box: the phase counter lives once on the sequence, and every
// open leaf reads it on demand.
const openEnd = -1

// sequence is the immutable, per-Add buffer of glyphs: the caller's symbols
// followed by one sequence-unique terminator. phase is advanced by the
// Ukkonen builder as symbols are processed and is read by any Path whose
// end is openEnd.
type sequence[S comparable, ID comparable] struct {
	id     ID
	ord    uint64
	glyphs []glyph[S]
	phase  int
}

func (q *sequence[S, ID]) at(i int) glyph[S] {
	return q.glyphs[i]
}

func (q *sequence[S, ID]) length() int {
	return len(q.glyphs)
}

// Path is a half-open span (sequence, start, end) over one input sequence,
// i.e. sequence[start:end). It is the path-span of the data model: node
// path-spans, edge labels and query spans are all Paths.
type Path[S comparable, ID comparable] struct {
	seq   *sequence[S, ID]
	start int
	end   int
}

// SequenceID reports the id of the sequence this path spans.
func (p Path[S, ID]) SequenceID() ID {
	return p.seq.id
}

// Start returns the start offset of the path.
func (p Path[S, ID]) Start() int {
	return p.start
}

// End returns the current end offset of the path. For an open-ended path
// (only on leaves built by Ukkonen) this tracks the sequence's phase
// counter, which rests at the full terminated length once the build ends.
func (p Path[S, ID]) End() int {
	if p.end == openEnd {
		return p.seq.phase
	}
	return p.end
}

// Len returns the string-depth of the path, i.e. End() - Start().
func (p Path[S, ID]) Len() int {
	return p.End() - p.start
}

// at returns the glyph at offset i of the path (0 <= i < Len()).
func (p Path[S, ID]) at(i int) glyph[S] {
	return p.seq.at(p.start + i)
}

// Symbols returns the user-visible symbols covered by the path, excluding
// any trailing terminator glyph.
func (p Path[S, ID]) Symbols() []S {
	out := make([]S, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		g := p.at(i)
		if g.terminator {
			break
		}
		out = append(out, g.sym)
	}
	return out
}

// compare compares p against other, both starting at the given offset, and
// returns the number of leading glyphs that match.
func (p Path[S, ID]) compare(other Path[S, ID], offset int) int {
	length := min(p.Len(), other.Len()) - offset
	i := 0
	for i < length {
		if p.at(offset+i) != other.at(offset+i) {
			break
		}
		i++
	}
	return i
}

// concatPrefix returns the sub-path of base spanning [base.start, base.start+n),
// i.e. the prefix of base truncated to string-depth n. Used when splitting
// edges and when truncating a node's path to a shallower depth.
func concatPrefix[S comparable, ID comparable](base Path[S, ID], n int) Path[S, ID] {
	return Path[S, ID]{seq: base.seq, start: base.start, end: base.start + n}
}
