package bitgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/bitgraph"
)

func TestBuildUndirectedSymmetrizes(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}, {1, 2}}, false)
	require.NoError(t, err)
	assert.True(t, g.HasArc(0, 1))
	assert.True(t, g.HasArc(1, 0))
	assert.True(t, g.Neighbors(0).Bit(1) == 1)
}

func TestBuildDirectedKeepsDirection(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}}, true)
	require.NoError(t, err)
	assert.True(t, g.HasArc(0, 1))
	assert.False(t, g.HasArc(1, 0))
	// ESU extension candidates come from the symmetrized skeleton regardless of direction
	assert.True(t, g.Neighbors(1).Bit(0) == 1)
}

func TestBuildDropsSelfLoops(t *testing.T) {
	g, err := bitgraph.Build(2, [][2]int{{0, 0}, {0, 1}}, false)
	require.NoError(t, err)
	assert.False(t, g.HasArc(0, 0))
}

func TestBuildRejectsOutOfRange(t *testing.T) {
	_, err := bitgraph.Build(2, [][2]int{{0, 5}}, false)
	require.Error(t, err)
}
