package motif_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/motif"
)

// scenarioAEdges is the nine-vertex, nine-edge graph spec.md names as
// Scenario A (1-based in the spec: 1->2, 1->3, 2->3, 4->1, 1->5, 6->2,
// 2->7, 8->3, 3->9), rebased to 0-based vertex indices.
func scenarioAEdges() (n int, edges [][2]int) {
	return 9, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {3, 0}, {0, 4}, {5, 1}, {1, 6}, {7, 2}, {2, 8},
	}
}

func countValues(c motif.Counts) []uint64 {
	var out []uint64
	for _, v := range c {
		out = append(out, v)
	}
	return out
}

func TestScenarioADirectedK3(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 3)
	res, err := d.Enumerate()
	require.NoError(t, err)

	assert.Equal(t, uint64(16), res.Total)
	assert.Len(t, res.Counts, 4)
	assert.ElementsMatch(t, []uint64{1, 3, 3, 9}, countValues(res.Counts))
}

func TestScenarioBUndirectedK3(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, false)
	require.NoError(t, err)

	d := motif.NewDriver(g, 3)
	res, err := d.Enumerate()
	require.NoError(t, err)

	assert.Equal(t, uint64(16), res.Total)
	assert.Len(t, res.Counts, 2)
	assert.ElementsMatch(t, []uint64{1, 15}, countValues(res.Counts))
}

func TestScenarioCDirectedK4(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 4)
	res, err := d.Enumerate()
	require.NoError(t, err)

	assert.Equal(t, uint64(24), res.Total)
	assert.Len(t, res.Counts, 8)
	for _, v := range res.Counts {
		assert.Equal(t, uint64(3), v)
	}
}

func TestScenarioDUndirectedK4(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, false)
	require.NoError(t, err)

	d := motif.NewDriver(g, 4)
	res, err := d.Enumerate()
	require.NoError(t, err)

	assert.Equal(t, uint64(24), res.Total)
	assert.Len(t, res.Counts, 3)
	assert.ElementsMatch(t, []uint64{6, 6, 12}, countValues(res.Counts))
}

func TestSerialParallelEquivalence(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	serial := motif.NewDriver(g, 3)
	serialRes, err := serial.Enumerate()
	require.NoError(t, err)

	parallel := motif.NewDriver(g, 3)
	parallelRes, err := parallel.EnumerateParallel(4)
	require.NoError(t, err)

	assert.Equal(t, serialRes.Total, parallelRes.Total)
	assert.Equal(t, serialRes.Counts, parallelRes.Counts)
}

func TestTotalConservation(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 3)
	res, err := d.Enumerate()
	require.NoError(t, err)

	var sum uint64
	for _, c := range res.Counts {
		sum += c
	}
	assert.Equal(t, res.Total, sum)
}

func TestRepeatRunsAreIdempotent(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 3)
	first, err := d.Enumerate()
	require.NoError(t, err)
	second, err := d.Enumerate()
	require.NoError(t, err)

	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, first.Total, second.Total)
}

func TestMotifSizeBelowMinimumIsConfigInvalid(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 1)
	_, err = d.Enumerate()
	require.ErrorIs(t, err, bitgraph.ErrConfigInvalid)
}

func TestMotifSizeAboveOrderIsConfigInvalid(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}}, false)
	require.NoError(t, err)

	d := motif.NewDriver(g, 5)
	_, err = d.Enumerate()
	require.ErrorIs(t, err, bitgraph.ErrConfigInvalid)
}

func TestGroupInfoCarriesBothNodeLabelAndOrbit(t *testing.T) {
	n, edges := scenarioAEdges()
	g, err := bitgraph.Build(n, edges, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 3)
	res, groups, err := d.EnumerateGroups()
	require.NoError(t, err)
	require.NotEmpty(t, groups.Groups)
	assert.Equal(t, res.Total, groups.Total)
	assert.Equal(t, len(res.Counts), groups.NumUnique)

	for _, classes := range groups.Groups {
		for key := range classes {
			assert.NotEmpty(t, key.Label)
			// NodeLabel and Orbit are both populated (zero is a valid
			// value for either, so this only checks the keys exist at
			// all, which require.NotEmpty on the outer map already does).
			_ = key.NodeLabel
			_ = key.Orbit
		}
	}
}

func TestK2EdgeCountingHasTwoDirectedClasses(t *testing.T) {
	// 0->1 is a single arc, 1<->2 a mutual pair: the two directed k=2 classes.
	g, err := bitgraph.Build(3, [][2]int{{0, 1}, {1, 2}, {2, 1}}, true)
	require.NoError(t, err)

	d := motif.NewDriver(g, 2)
	res, err := d.Enumerate()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total)
	assert.Len(t, res.Counts, 2)
}

func TestIsolatedVertexContributesNothingAtKGreaterThanOne(t *testing.T) {
	g, err := bitgraph.Build(4, [][2]int{{0, 1}, {1, 2}}, false)
	require.NoError(t, err)

	d := motif.NewDriver(g, 2)
	res, err := d.Enumerate()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total) // only (0,1) and (1,2); vertex 3 isolated
}
