// Package walker implements the ESU (Enumerate SUbgraphs) descent as an
// explicit state machine rather than a recursive function, so a driver can
// run many walkers concurrently — one per root vertex — each owning its own
// stack-like state with no shared mutation beyond the read-only graph.
//
// The state machine mirrors the original_source Rust walker almost field for
// field: a subgraph stack, a per-depth extension-candidate row, a per-depth
// closed-neighborhood row, and a per-depth exclusive-neighborhood scratch
// row, all addressed through a bitset.Multi so each depth gets its own
// backing array.
package walker

import (
	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/bitset"
)

// Walker drives one root vertex's ESU descent.
type Walker struct {
	graph *bitgraph.BitGraph
	k     int
	root  int

	sub   []int
	ext   bitset.Multi
	nbh   bitset.Multi
	exc   bitset.Multi
	depth int

	aboveRoot bitset.Set
}

// New returns a Walker ready to enumerate size-k connected induced subgraphs
// rooted at root. root's own extension candidates are restricted to vertex
// indices greater than root, which is what gives ESU its duplicate-free,
// root-minimal enumeration: a subgraph is only ever discovered by its
// lowest-indexed member.
func New(g *bitgraph.BitGraph, k, root int) *Walker {
	n := g.N()
	w := &Walker{
		graph:     g,
		k:         k,
		root:      root,
		sub:       make([]int, 1, k),
		ext:       bitset.NewMulti(k, n),
		nbh:       bitset.NewMulti(k, n),
		exc:       bitset.NewMulti(k, n),
		aboveRoot: bitset.New(n),
	}
	w.sub[0] = root
	for v := root + 1; v < n; v++ {
		w.aboveRoot.Set(v)
	}
	w.nbh.UnionExternal(0, g.Neighbors(root))
	w.ext.UnionExternal(0, g.Neighbors(root))
	w.ext.Row(0).Intersect(w.aboveRoot)
	return w
}

// Subgraph returns the current subgraph's member vertices. The returned
// slice is owned by the Walker and is only valid until the next Descend or
// Ascend call; callers that need to retain it must copy it.
func (w *Walker) Subgraph() []int { return w.sub }

// Depth returns the current recursion depth (len(Subgraph())-1).
func (w *Walker) Depth() int { return w.depth }

// IsDescending reports whether the current subgraph is still smaller than
// the target size k, i.e. whether descending further is meaningful.
func (w *Walker) IsDescending() bool { return len(w.sub) < w.k }

// HasExtension reports whether the current depth's extension row has a
// candidate vertex left to try.
func (w *Walker) HasExtension() bool { return w.ext.Row(w.depth).Any() }

// IsFinished reports whether this root's entire search space has been
// exhausted: back at depth 0 with no candidates left.
func (w *Walker) IsFinished() bool { return w.depth == 0 && !w.HasExtension() }

// Descend pops the next candidate from the current extension row, appends
// it to the subgraph, and computes the next depth's extension and
// closed-neighborhood rows.
func (w *Walker) Descend() {
	d := w.depth
	row := w.ext.Row(d)
	cand := row.NextOne(0)
	row.Clear(cand)

	w.sub = append(w.sub, cand)
	nd := d + 1

	w.nbh.CopyRow(nd, d)
	w.nbh.UnionExternal(nd, w.graph.Neighbors(cand))

	w.exc.ClearRow(nd)
	w.exc.UnionExternal(nd, w.graph.Neighbors(cand))
	w.exc.DifferenceExternal(nd, w.nbh.Row(d)) // strip anything already in the closed neighborhood at depth d
	w.exc.Row(nd).Intersect(w.aboveRoot)

	w.ext.CopyRow(nd, d)
	w.ext.Row(nd).Union(w.exc.Row(nd))

	w.depth = nd
}

// Ascend pops the last vertex off the subgraph and backs the depth counter
// up by one. The popped depth's rows are left as-is; they are overwritten
// the next time Descend reaches that depth.
func (w *Walker) Ascend() {
	w.sub = w.sub[:len(w.sub)-1]
	if w.depth > 0 {
		w.depth--
	}
}
