package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The LCA reduction depends on these exact boundary values.
func TestNlz(t *testing.T) {
	assert.Equal(t, 32, Nlz(0))
	assert.Equal(t, 31, Nlz(1))
	assert.Equal(t, 24, Nlz(0xFF))
	assert.Equal(t, 0, Nlz(0xFFFFFFFF))
}

func TestMsb(t *testing.T) {
	assert.Equal(t, -1, Msb(0))
	assert.Equal(t, 3, Msb(0xF))
	assert.Equal(t, 7, Msb(0xFF))
}

func TestH(t *testing.T) {
	assert.Equal(t, 32, H(0))
	assert.Equal(t, 0, H(5))
	assert.Equal(t, 3, H(8))
}
