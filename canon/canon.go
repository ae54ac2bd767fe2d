// Package canon packs a discovered k-vertex subgraph into the dense,
// word-aligned adjacency buffer an external canonical-labeling oracle
// expects (modeled on the nauty C library's densenauty contract: a packed
// graph buffer, lab/ptn/orbits arrays, and a canonical buffer filled in by
// the oracle) and ships a default in-process oracle for callers who don't
// have a faster labeling library wired in.
package canon

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/motifscan/motifscan/bitgraph"
)

// ErrOracleContract reports that an Oracle implementation returned a
// canonical buffer whose shape disagrees with the graph it was given.
var ErrOracleContract = errors.New("canon: oracle violated its buffer contract")

const wordBits = 64

// DenseGraph is a k x k adjacency matrix packed MSB-first into `words`
// 64-bit words per row (k*words in all), the shape densenauty and
// compatible oracles expect.
type DenseGraph struct {
	K        int
	Directed bool
	words    int
	bits     []uint64
	canon    []uint64
	Lab      []int
	Ptn      []int
	Orbits   []int
}

// wordsFor returns the number of 64-bit words needed to hold k columns.
func wordsFor(k int) int { return (k + wordBits - 1) / wordBits }

// Pack builds a DenseGraph from a subgraph's induced adjacency. members
// gives the subgraph's vertices in the order that becomes row/column index
// 0..k-1 of the packed buffer — callers that need a canonical key regardless
// of discovery order rely on the Oracle to erase this ordering, not on
// members being pre-sorted.
func Pack(g *bitgraph.BitGraph, members []int, directed bool) *DenseGraph {
	k := len(members)
	w := wordsFor(k)
	d := &DenseGraph{
		K:        k,
		Directed: directed,
		words:    w,
		bits:     make([]uint64, k*w),
		canon:    make([]uint64, k*w),
		Lab:      make([]int, k),
		Ptn:      make([]int, k),
		Orbits:   make([]int, k),
	}
	for i := range d.Lab {
		d.Lab[i] = i
		d.Ptn[i] = 1
		d.Orbits[i] = i
	}
	if k > 0 {
		d.Ptn[k-1] = 0
	}
	for i, u := range members {
		for j, v := range members {
			if i == j {
				continue
			}
			if g.HasArc(u, v) {
				d.setBit(d.bits, i, j)
			}
		}
	}
	return d
}

func (d *DenseGraph) setBit(buf []uint64, row, col int) {
	wi := row*d.words + col/wordBits
	bit := col % wordBits
	buf[wi] |= 1 << uint(wordBits-1-bit)
}

func (d *DenseGraph) getBit(buf []uint64, row, col int) bool {
	wi := row*d.words + col/wordBits
	bit := col % wordBits
	return buf[wi]&(1<<uint(wordBits-1-bit)) != 0
}

// Bits returns the raw (pre-canonical) packed adjacency buffer.
func (d *DenseGraph) Bits() []uint64 { return d.bits }

// Canon returns the canonical packed adjacency buffer, valid only after an
// Oracle has run.
func (d *DenseGraph) Canon() []uint64 { return d.canon }

// CanonBit reports whether the canonical buffer has an arc from row to col.
func (d *DenseGraph) CanonBit(row, col int) bool { return d.getBit(d.canon, row, col) }

// Key returns the canonical buffer's bytes as a map key, suitable for
// grouping isomorphic subgraphs together.
func (d *DenseGraph) Key() string { return packKey(d.Directed, d.canon) }

// RawKey returns the pre-canonical (as-discovered) buffer's bytes as a map
// key. It is what Memo is keyed on: two subgraphs with equal RawKey are
// bit-identical before canonicalization and so must canonicalize identically,
// letting a cache hit skip the oracle call entirely.
func (d *DenseGraph) RawKey() string { return packKey(d.Directed, d.bits) }

func packKey(directed bool, words []uint64) string {
	buf := make([]byte, len(words)*8+1)
	if directed {
		buf[0] = 'D'
	} else {
		buf[0] = 'U'
	}
	for i, word := range words {
		binary.BigEndian.PutUint64(buf[1+i*8:], word)
	}
	return string(buf)
}

// Verify checks that an Oracle filled in a canonical buffer of the shape
// this DenseGraph expects. Callers wrap a third-party Oracle with this check
// immediately after calling Canonicalize, per the external-oracle contract.
func Verify(d *DenseGraph) error {
	if len(d.canon) != d.K*d.words {
		return fmt.Errorf("canon: canonical buffer has %d words, want %d: %w", len(d.canon), d.K*d.words, ErrOracleContract)
	}
	if len(d.Lab) != d.K || len(d.Ptn) != d.K || len(d.Orbits) != d.K {
		return fmt.Errorf("canon: lab/ptn/orbits length mismatch for k=%d: %w", d.K, ErrOracleContract)
	}
	return nil
}

// Oracle canonicalizes a DenseGraph in place: it must fill Canon(), Lab,
// Ptn, and Orbits. Implementations are the "external collaborator" this
// system's canonicalization step depends on — a production deployment might
// swap in a cgo binding to nauty or bliss; Backtrack is the pure-Go default.
type Oracle interface {
	Canonicalize(g *DenseGraph)
}
