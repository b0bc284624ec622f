package suftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathLenAndSymbols(t *testing.T) {
	tr := New[rune, string]()
	require.NoError(t, tr.Add("A", symbols("ab")))

	q := tr.queryPath(symbols("ab"))
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []rune("ab"), q.Symbols())
}

func TestPathOpenEndTracksPhase(t *testing.T) {
	tr := New[rune, string]()
	q := tr.newSequence("A", 0)

	for _, r := range []rune("xab") {
		q.glyphs = append(q.glyphs, userGlyph[rune](r))
		q.phase = len(q.glyphs)
	}

	p := Path[rune, string]{seq: q, start: 1, end: openEnd}
	assert.Equal(t, 2, p.Len())

	q.glyphs = append(q.glyphs, userGlyph[rune]('x'))
	q.phase = len(q.glyphs)
	assert.Equal(t, 3, p.Len(), "open-ended path grows with the sequence's phase")
}

func TestPathCompare(t *testing.T) {
	tr := New[rune, string]()
	q := tr.newSequence("A", 0)
	for _, r := range []rune("abcabd") {
		q.glyphs = append(q.glyphs, userGlyph[rune](r))
	}
	q.phase = len(q.glyphs)

	p1 := Path[rune, string]{seq: q, start: 0, end: 3} // abc
	p2 := Path[rune, string]{seq: q, start: 3, end: 6} // abd
	assert.Equal(t, 2, p1.compare(p2, 0))
}
