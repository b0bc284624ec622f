package suftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullLabel returns every glyph (including a trailing terminator, if any)
// of a node's own stored path-span.
func fullLabel[S comparable, ID comparable](n *Node[S, ID]) []glyph[S] {
	out := make([]glyph[S], n.path.Len())
	for i := range out {
		out[i] = n.path.at(i)
	}
	return out
}

// rebuildLabel recomputes a node's label independently, by walking the
// parent chain and, at each step, reading the glyphs of that ancestor's own
// edge directly off its Path - i.e. without ever trusting the node's own
// cached depth/label to be self-consistent across the chain.
func rebuildLabel[S comparable, ID comparable](n *Node[S, ID]) []glyph[S] {
	var chain []*Node[S, ID]
	for cur := n; !cur.isRoot; cur = cur.parent {
		chain = append(chain, cur)
	}
	out := make([]glyph[S], 0, n.path.Len())
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		for j := c.parent.path.Len(); j < c.path.Len(); j++ {
			out = append(out, c.path.at(j))
		}
	}
	return out
}

// Every node's path-label equals the concatenation of edge labels from
// the root to it, and every internal node except the root has at least 2
// children with distinct first symbols.
func TestNodeInvariants(t *testing.T) {
	for _, kind := range []BuilderKind{BuilderUkkonen, BuilderMcCreight, BuilderNaive} {
		t.Run(kind.String(), func(t *testing.T) {
			tr := New[rune, string]()
			require.NoError(t, tr.Add("A", symbols("mississippi"), WithBuilder(kind)))
			require.NoError(t, tr.Add("B", symbols("ississippi"), WithBuilder(kind)))

			for n := range tr.PreOrder() {
				assert.Equal(t, fullLabel(n), rebuildLabel(n), "path-label must equal concatenation of edge labels")

				if n.IsInternal() && !n.IsRoot() {
					assert.GreaterOrEqual(t, n.NumChildren(), 2)
				}
				if n.IsInternal() {
					seen := make(map[glyph[rune]]bool)
					for key, child := range n.childSeq2() {
						assert.False(t, seen[key], "no two children may share a first symbol")
						seen[key] = true
						assert.Equal(t, key, child.path.at(n.path.Len()), "child map key must match the first glyph of its edge")
					}
				}
			}
		})
	}
}

// Every leaf contributed by sequence S has path-label S[i:] + terminator,
// and the number of leaves contributed by S equals |S|.
func TestLeafCountAndLabel(t *testing.T) {
	s := "abracadabra"
	tr := New[rune, string]()
	require.NoError(t, tr.Add("A", symbols(s)))

	var leaves []*Node[rune, string]
	for n := range tr.PreOrder() {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}
	assert.Len(t, leaves, len(s))

	for _, l := range leaves {
		id, ok := l.SequenceID()
		require.True(t, ok)
		assert.Equal(t, "A", id)

		start := l.Span().Start()
		want := []rune(s[start:])
		assert.Equal(t, want, l.Span().Symbols())
	}
}

func TestFindPathNoMatch(t *testing.T) {
	tr := New[rune, string]()
	require.NoError(t, tr.Add("A", symbols("xabxac")))
	assert.False(t, tr.Find(symbols("zzz")))
	assert.Nil(t, tr.FindAll(symbols("zzz")))
}
