// Package switching implements the degree-preserving double-edge-swap
// Markov chain used to generate randomized null-model graphs for motif
// enrichment. It follows the teacher's random-graph generator idiom
// (*rand.Rand dependency injection with a nil-fallback to a time-seeded
// source) rather than introducing a separate randomness abstraction.
package switching

import (
	"math/rand"
	"time"
)

// Switcher runs the double-edge-swap chain.
type Switcher struct {
	rand *rand.Rand
}

// New returns a Switcher. If r is nil, a new source and generator are
// created for one-time use, matching the teacher's random-graph
// constructors (see Gnm, Gnp, Euclidean).
func New(r *rand.Rand) *Switcher {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Switcher{rand: r}
}

// Switch runs q*len(edges) accepted double-edge swaps over a copy of edges
// (0-based vertex indices, n vertices) and returns the resulting edge list.
// Rejected attempts (would create a self-loop or a duplicate edge) do not
// count toward the q*m budget; once 100*q*m attempts have been made, Switch
// stops and returns the edges as they stand, so a graph that admits few or
// no valid swaps still returns. Every vertex's in-degree and out-degree
// (edge-endpoint count, for undirected graphs) is preserved exactly,
// pinned to the original vertex identity — this is not a relabeling, only
// an edge-endpoint shuffle.
func (s *Switcher) Switch(n int, edges [][2]int, directed bool, q int) [][2]int {
	m := len(edges)
	if m == 0 {
		return nil
	}
	el := make([][2]int, m)
	copy(el, edges)

	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	for _, e := range el {
		adj[e[0]][e[1]] = true
		if !directed {
			adj[e[1]][e[0]] = true
		}
	}

	target := q * m
	maxAttempts := 100 * target
	for accepted, attempts := 0, 0; accepted < target && attempts < maxAttempts; attempts++ {
		i := s.rand.Intn(m)
		j := s.rand.Intn(m)
		if i == j {
			continue
		}
		a, b := el[i][0], el[i][1]
		c, d := el[j][0], el[j][1]

		// the swap produces candidate edges (a,d) and (c,b); either would
		// be a self-loop if a==d or c==b.
		if a == d || c == b {
			continue
		}
		if adj[a][d] || adj[c][b] {
			continue
		}

		delete(adj[a], b)
		delete(adj[c], d)
		adj[a][d] = true
		adj[c][b] = true
		if !directed {
			delete(adj[b], a)
			delete(adj[d], c)
			adj[d][a] = true
			adj[b][c] = true
		}

		el[i] = [2]int{a, d}
		el[j] = [2]int{c, b}
		accepted++
	}
	return el
}
