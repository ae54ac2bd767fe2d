package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/ioformat"
)

func TestBuildNodeDictionaryAssignsDiscoveryOrderIds(t *testing.T) {
	input := "alice bob\nbob carol\ncarol alice\n"
	dict, err := ioformat.BuildNodeDictionary(strings.NewReader(input), false)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"alice": 1, "bob": 2, "carol": 3}, dict.Labels)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, dict.Edges)
	assert.Equal(t, 0, dict.NumFiltered)
}

func TestBuildNodeDictionaryFiltersLoopsWhenRequested(t *testing.T) {
	input := "alice alice\nalice bob\n"
	dict, err := ioformat.BuildNodeDictionary(strings.NewReader(input), true)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 1}}, dict.Edges)
	assert.Equal(t, 1, dict.NumFiltered)
}

func TestBuildNodeDictionaryKeepsLoopsByDefault(t *testing.T) {
	input := "alice alice\nalice bob\n"
	dict, err := ioformat.BuildNodeDictionary(strings.NewReader(input), false)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 0}, {0, 1}}, dict.Edges)
	assert.Equal(t, 0, dict.NumFiltered)
}

func TestBuildNodeDictionaryRejectsWrongFieldCount(t *testing.T) {
	_, err := ioformat.BuildNodeDictionary(strings.NewReader("alice bob carol\n"), false)
	require.ErrorIs(t, err, ioformat.ErrMalformedInput)
}

func TestWriteEdgeListIsOneBasedAndTabSeparated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteEdgeList(&buf, [][2]int{{0, 1}, {1, 2}}))
	assert.Equal(t, "1\t2\n2\t3\n", buf.String())
}

func TestWriteNodeDictRoundTripsLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteNodeDict(&buf, map[string]int{"alice": 1}))
	assert.Equal(t, "alice\t1\n", buf.String())
}
