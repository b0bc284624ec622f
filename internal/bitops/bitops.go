// Package bitops implements the word-level bit tricks the Schieber-Vishkin
// LCA reduction relies on, built on math/bits.
package bitops

import "math/bits"

// Nlz returns the number of leading zeros in the 32-bit representation of x.
// Nlz(0) is 32.
func Nlz(x uint32) int {
	return bits.LeadingZeros32(x)
}

// Msb returns the position of the most significant set bit of x, counting
// from the right and starting at 0. Msb(0) is -1.
func Msb(x uint32) int {
	return 31 - Nlz(x)
}

// H returns the position, counting from the right and starting at 0, of the
// least-significant set bit of k. H(0) is defined as 32.
func H(k uint32) int {
	return 32 - Nlz(^k&(k-1))
}
