package suftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Re-running the analysis passes must not change the answers.
func TestComputeCIdempotent(t *testing.T) {
	tr := New[rune, string]()
	require.NoError(t, tr.Add("A", symbols("banana")))
	require.NoError(t, tr.Add("B", symbols("bandana")))

	first := tr.MaximalRepeats()
	second := tr.MaximalRepeats()
	assert.Equal(t, first, second)

	firstCS := tr.CommonSubstrings()
	secondCS := tr.CommonSubstrings()
	assert.Equal(t, firstCS, secondCS)
}

// After the C pass, C(v) equals the number of distinct sequence ids in
// v's subtree.
func TestComputeCCountsDistinctSequences(t *testing.T) {
	tr := New[rune, string]()
	require.NoError(t, tr.Add("A", symbols("abc")))
	require.NoError(t, tr.Add("B", symbols("abd")))
	require.NoError(t, tr.Add("C", symbols("abe")))

	tr.root.computeC()

	seen := make(map[string]struct{})
	for n := range tr.PreOrder() {
		seen = make(map[string]struct{})
		n.preOrder(func(m *Node[rune, string]) bool {
			if m.leaf {
				seen[m.seqID] = struct{}{}
			}
			return true
		})
		assert.Equal(t, len(seen), n.C(), "C(v) must equal the number of distinct sequence ids under v")
	}
}

// A leaf is never left-diverse.
func TestLeavesAreNeverLeftDiverse(t *testing.T) {
	tr := New[rune, string]()
	require.NoError(t, tr.Add("A", symbols("xabxac")))

	tr.root.computeC()
	tr.root.computeLeftDiverse()

	for n := range tr.PreOrder() {
		if n.IsLeaf() {
			assert.False(t, n.IsLeftDiverse())
		}
	}
}
