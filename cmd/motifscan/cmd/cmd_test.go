package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motifscan/motifscan/cmd/motifscan/cmd"
)

func writeEdgeList(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "graph.txt")
	content := "1 2\n1 3\n2 3\n4 1\n1 5\n6 2\n2 7\n8 3\n3 9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEnumerateWritesTabSeparatedCounts(t *testing.T) {
	dir := t.TempDir()
	input := writeEdgeList(t, dir)
	output := filepath.Join(dir, "out.tsv")

	root := cmd.RootCmd()
	root.SetArgs([]string{"enumerate", "-i", input, "-o", output, "-k", "3"})
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "motif\tcount\n")
}

func TestFormatReindexesArbitraryLabels(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "labeled.txt")
	content := "alice bob\nbob carol\ncarol alice\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))

	prefix := filepath.Join(dir, "out")
	root := cmd.RootCmd()
	root.SetArgs([]string{"format", "-i", input, "-o", prefix})
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	require.NoError(t, root.Execute())

	edges, err := os.ReadFile(prefix + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "1\t2\n2\t3\n3\t1\n", string(edges))

	dict, err := os.ReadFile(prefix + "_dict.txt")
	require.NoError(t, err)
	assert.Contains(t, string(dict), "alice\t1\n")
	assert.Contains(t, string(dict), "bob\t2\n")
	assert.Contains(t, string(dict), "carol\t3\n")
}
