package cmd

import (
	"fmt"
	"os"

	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/ioformat"
)

// loadGraph reads an edge list from path, logging any non-fatal diagnostics
// (dropped self-loops, collapsed duplicates) at Warn level, and builds the
// BitGraph the rest of the CLI operates on.
func loadGraph(path string, directed bool, includeLoops bool) (*bitgraph.BitGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	n, edges, warnings, err := ioformat.ReadEdgeList(f, ioformat.ReadOptions{IncludeLoops: includeLoops})
	if err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	g, err := bitgraph.Build(n, edges, directed)
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}
	return g, nil
}

// openOutput opens path for writing, or returns stdout when path is "-" or empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
