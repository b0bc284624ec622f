package suftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminatorGlyphsAreUnique(t *testing.T) {
	a := terminatorGlyph[rune](1)
	b := terminatorGlyph[rune](2)
	assert.NotEqual(t, a, b, "terminators from different sequences must not compare equal")
	assert.Equal(t, a, terminatorGlyph[rune](1), "the same sequence's terminator compares equal to itself")
}

func TestTerminatorNeverEqualsUserSymbol(t *testing.T) {
	term := terminatorGlyph[rune](0)
	for _, r := range []rune("$xyz") {
		assert.NotEqual(t, term, userGlyph[rune](r), "a terminator must never collide with a user symbol, even '$'")
	}
}
