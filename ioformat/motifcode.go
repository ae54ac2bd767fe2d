package ioformat

import (
	"fmt"
	"io"

	"github.com/motifscan/motifscan/canon"
)

// WriteMotifCode writes a compact, graph6-style textual encoding of a
// canonicalized motif: a size byte (n+63, matching graph6's convention for
// n < 63), followed by the adjacency bits packed six at a time into bytes
// offset by 63, padded with 1-bits in the final partial group. Directed
// motifs are distinguished the way digraph6 distinguishes itself from
// graph6: a leading '&', and the full off-diagonal matrix packed row-major
// instead of just the upper triangle (direction is significant, so the
// lower triangle can't be inferred from the upper one).
//
// Grounded on the inverse of the teacher pack's graph6 decoder
// (mathematica/decode_g6.go: n := int(s[0])-63, 6-bit groups offset by 63)
// and on the '&'-prefixed labels (e.g. "&BP_", "&BC_") the original source's
// own test fixtures use for directed 3-node motifs ('B' is 3+63).
func WriteMotifCode(w io.Writer, g *canon.DenseGraph, directed bool) error {
	n := g.K
	if n > 62 {
		return fmt.Errorf("ioformat: motif size %d exceeds graph6 single-byte header limit of 62", n)
	}

	var bits []bool
	if directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				bits = append(bits, g.CanonBit(i, j))
			}
		}
	} else {
		for j := 1; j < n; j++ {
			for i := 0; i < j; i++ {
				bits = append(bits, g.CanonBit(i, j))
			}
		}
	}

	out := make([]byte, 0, 2+(len(bits)+5)/6)
	if directed {
		out = append(out, '&')
	}
	out = append(out, byte(n+63))
	for i := 0; i < len(bits); i += 6 {
		var v byte
		for b := 0; b < 6; b++ {
			v <<= 1
			if i+b < len(bits) {
				if bits[i+b] {
					v |= 1
				}
			} else {
				v |= 1 // pad with 1-bits, per graph6 convention
			}
		}
		out = append(out, v+63)
	}

	_, err := w.Write(out)
	return err
}
