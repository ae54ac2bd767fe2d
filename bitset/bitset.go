// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package bitset provides a fixed-width, word-packed bit set and a
// recursion-indexed stack of such sets.
//
// The algebra here (NextOne's word-skip scan, the de Bruijn trailingZeros
// table, PopCount's clear-lowest-bit loop) is the same shape as the
// big.Int-backed bit tricks used elsewhere for whole-graph bitmaps, just
// rebuilt over a plain []uint64 so two rows of a Multi can be addressed,
// unioned, and subtracted without ever aliasing the same underlying array.
package bitset

const (
	wordSize = 64
	wordExp  = 6
)

// Set is a fixed-width bit set over n positions, 0..n-1.
type Set struct {
	n     int
	words []uint64
}

// New returns a Set with room for n bits, all initially clear.
func New(n int) Set {
	return Set{n: n, words: make([]uint64, wordsFor(n))}
}

func wordsFor(n int) int {
	return (n + wordSize - 1) / wordSize
}

// Len returns the number of addressable bits.
func (s Set) Len() int { return s.n }

// Set sets bit i to 1.
func (s Set) Set(i int) {
	s.words[i>>wordExp] |= 1 << uint(i&(wordSize-1))
}

// Clear sets bit i to 0.
func (s Set) Clear(i int) {
	s.words[i>>wordExp] &^= 1 << uint(i&(wordSize-1))
}

// Bit returns 0 or 1, the value of bit i.
func (s Set) Bit(i int) int {
	return int(s.words[i>>wordExp]>>uint(i&(wordSize-1))) & 1
}

// ClearAll zeros every bit.
func (s Set) ClearAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// SetAll sets every addressable bit, including any unused high bits of the
// final word up to n-1; bits at index >= n are never touched by callers
// since every accessor is bounds-checked by the caller's own n.
func (s Set) SetAll() {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.maskTail()
}

// maskTail clears any bits at position >= n living in the final word, so
// PopCount and NextOne never observe phantom set bits past the set's width.
func (s Set) maskTail() {
	if s.n == 0 {
		return
	}
	last := s.n & (wordSize - 1)
	if last != 0 {
		s.words[len(s.words)-1] &= (1 << uint(last)) - 1
	}
}

// Union sets s to the bitwise union of s and t. s and t must have equal Len.
func (s Set) Union(t Set) {
	for i := range s.words {
		s.words[i] |= t.words[i]
	}
}

// Difference clears from s every bit that is set in t.
func (s Set) Difference(t Set) {
	for i := range s.words {
		s.words[i] &^= t.words[i]
	}
}

// Intersect sets s to the bitwise intersection of s and t.
func (s Set) Intersect(t Set) {
	for i := range s.words {
		s.words[i] &= t.words[i]
	}
}

// CopyFrom overwrites s's contents with t's. s and t must have equal Len.
func (s Set) CopyFrom(t Set) {
	copy(s.words, t.words)
}

// Any reports whether any bit is set.
func (s Set) Any() bool {
	for _, w := range s.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// PopCount returns the number of one bits.
func (s Set) PopCount() int {
	c := 0
	for _, w := range s.words {
		for w != 0 {
			w &= w - 1
			c++
		}
	}
	return c
}

// NextOne returns the position of the first one bit at or after position i,
// or -1 if there is none. Calling it with i = 0, then with the previous
// result + 1, iterates all one bits in ascending order.
func (s Set) NextOne(i int) int {
	if i >= s.n {
		return -1
	}
	x := i >> wordExp
	if wx := s.words[x] >> uint(i&(wordSize-1)); wx != 0 {
		return i + trailingZeros(wx)
	}
	x++
	for y, wy := range s.words[x:] {
		if wy != 0 {
			return (x+y)<<wordExp | trailingZeros(wy)
		}
	}
	return -1
}

// reference: http://graphics.stanford.edu/~seander/bithacks.html
const deBruijn64Multiple = 0x03f79d71b4ca8b09
const deBruijn64Shift = 58

var deBruijn64Bits = [64]int{
	0, 1, 56, 2, 57, 49, 28, 3, 61, 58, 42, 50, 38, 29, 17, 4,
	62, 47, 59, 36, 45, 43, 51, 22, 53, 39, 33, 30, 24, 18, 12, 5,
	63, 55, 48, 27, 60, 41, 37, 16, 46, 35, 44, 21, 52, 32, 23, 11,
	54, 26, 40, 15, 34, 20, 31, 10, 25, 14, 19, 9, 13, 8, 7, 6,
}

// trailingZeros returns the number of trailing 0 bits in v. v must be != 0.
func trailingZeros(v uint64) int {
	return deBruijn64Bits[(v&-v)*deBruijn64Multiple>>deBruijn64Shift]
}
