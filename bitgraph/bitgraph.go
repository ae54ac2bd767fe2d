// Package bitgraph provides an immutable, bitset-backed adjacency structure
// built once from an edge list and then shared read-only across every
// enumeration goroutine.
package bitgraph

import (
	"errors"
	"fmt"

	"github.com/motifscan/motifscan/bitset"
)

// ErrConfigInvalid reports a motif size, graph order, or edge endpoint
// outside the bounds this system can operate within.
var ErrConfigInvalid = errors.New("bitgraph: invalid configuration")

// BitGraph is the read-only adjacency view an enumeration run walks.
//
// undirected holds the symmetrized ("both directions collapsed to one",
// never containing v itself) adjacency used for connectivity checks and for walking
// extension candidates — ESU's notion of a connected induced subgraph is
// defined over this undirected skeleton even when the graph is directed.
// outgoing holds the true out-adjacency, consulted only when a discovered
// subgraph's arcs are packed into a canonicalization buffer.
type BitGraph struct {
	n          int
	directed   bool
	undirected []bitset.Set
	outgoing   []bitset.Set
}

// Build constructs a BitGraph over n vertices (0..n-1) from a 0-based edge
// list. Self-loops (u == v) are always dropped here, even when the reader
// kept them; a repeated edge sets the same bits again and so collapses to
// one.
func Build(n int, edges [][2]int, directed bool) (*BitGraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("bitgraph: negative order %d: %w", n, ErrConfigInvalid)
	}
	g := &BitGraph{
		n:          n,
		directed:   directed,
		undirected: make([]bitset.Set, n),
		outgoing:   make([]bitset.Set, n),
	}
	for i := 0; i < n; i++ {
		g.undirected[i] = bitset.New(n)
		g.outgoing[i] = bitset.New(n)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("bitgraph: edge (%d,%d) out of range for order %d: %w", u, v, n, ErrConfigInvalid)
		}
		if u == v {
			continue
		}
		g.undirected[u].Set(v)
		g.undirected[v].Set(u)
		g.outgoing[u].Set(v)
		if !directed {
			g.outgoing[v].Set(u)
		}
	}
	return g, nil
}

// N returns the graph's order.
func (g *BitGraph) N() int { return g.n }

// Directed reports whether arc direction is significant for this graph.
func (g *BitGraph) Directed() bool { return g.directed }

// Neighbors returns v's symmetrized neighbor set, used for ESU extension and
// connectivity checks.
func (g *BitGraph) Neighbors(v int) bitset.Set { return g.undirected[v] }

// OutNeighbors returns v's true out-neighbor set.
func (g *BitGraph) OutNeighbors(v int) bitset.Set { return g.outgoing[v] }

// HasArc reports whether there is an arc from u to v (for directed graphs)
// or an edge between u and v (for undirected graphs).
func (g *BitGraph) HasArc(u, v int) bool { return g.outgoing[u].Bit(v) == 1 }

// Edges returns the graph's arc list: every (u,v) with an arc for directed
// graphs, or every edge exactly once (u < v) for undirected graphs. The
// order is deterministic (ascending by source, then target) so callers that
// reseed a switcher over this list get reproducible results.
func (g *BitGraph) Edges() [][2]int {
	var edges [][2]int
	for u := 0; u < g.n; u++ {
		row := g.outgoing[u]
		for v := row.NextOne(0); v >= 0; v = row.NextOne(v + 1) {
			if g.directed || v > u {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges
}
