package walker_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/walker"
)

// run drives a single root's walker to completion the way an
// EnumerationDriver does, collecting every emitted k-subgraph as a sorted
// slice of vertex indices.
func run(g *bitgraph.BitGraph, k, root int) [][]int {
	w := walker.New(g, k, root)
	var out [][]int
	for !w.IsFinished() {
		if w.IsDescending() && w.HasExtension() {
			w.Descend()
			if len(w.Subgraph()) == k {
				sub := append([]int(nil), w.Subgraph()...)
				sort.Ints(sub)
				out = append(out, sub)
				w.Ascend()
			}
		} else {
			w.Ascend()
		}
	}
	return out
}

func TestTriangleK3FindsOneSubgraph(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}, {1, 2}, {0, 2}}, false)
	require.NoError(t, err)

	got := run(g, 3, 0)
	assert.Equal(t, [][]int{{0, 1, 2}}, got)

	assert.Empty(t, run(g, 3, 1))
	assert.Empty(t, run(g, 3, 2))
}

func TestTriangleK2FindsEdgesOnceEach(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}, {1, 2}, {0, 2}}, false)
	require.NoError(t, err)

	r0 := run(g, 2, 0)
	assert.ElementsMatch(t, [][]int{{0, 1}, {0, 2}}, r0)

	r1 := run(g, 2, 1)
	assert.Equal(t, [][]int{{1, 2}}, r1)

	assert.Empty(t, run(g, 2, 2))
}

func TestPathGraphRootMinimality(t *testing.T) {
	// 0-1-2-3 path, k=3: connected size-3 induced subgraphs are {0,1,2}
	// and {1,2,3}, each discoverable only from its minimum-index vertex.
	g, err := bitgraph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, false)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 2}}, run(g, 3, 0))
	assert.Equal(t, [][]int{{1, 2, 3}}, run(g, 3, 1))
	assert.Empty(t, run(g, 3, 2))
	assert.Empty(t, run(g, 3, 3))
}

func TestIsolatedVertexFindsNothingAtKGreaterThanOne(t *testing.T) {
	g, err := bitgraph.Build(2, nil, false)
	require.NoError(t, err)
	assert.Empty(t, run(g, 2, 0))
	assert.Empty(t, run(g, 2, 1))
}
