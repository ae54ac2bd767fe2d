package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/ioformat"
)

func TestWriteDotDirected(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}, {1, 2}}, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteDot(&buf, g, "m"))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph m {"))
	assert.Contains(t, out, "0 -> 1;")
	assert.Contains(t, out, "1 -> 2;")
}

func TestWriteDotUndirectedEachEdgeOnce(t *testing.T) {
	g, err := bitgraph.Build(3, [][2]int{{0, 1}, {1, 2}}, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteDot(&buf, g, ""))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph g {"))
	assert.Equal(t, 1, strings.Count(out, "0 -- 1;"))
	assert.Equal(t, 1, strings.Count(out, "1 -- 2;"))
}
