package ioformat

import (
	"fmt"
	"io"

	"github.com/motifscan/motifscan/bitgraph"
)

// WriteDot writes a minimal Graphviz dot representation of g, useful for
// visually inspecting a motif or the graph a catalog was drawn from.
// Grounded on the teacher pack's dot package: a directed graph becomes a
// digraph with "->" edges, an undirected graph becomes a graph with "--"
// edges and each pair written once.
func WriteDot(w io.Writer, g *bitgraph.BitGraph, name string) error {
	if name == "" {
		name = "g"
	}
	if g.Directed() {
		if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
			return err
		}
		for _, e := range g.Edges() {
			if _, err := fmt.Fprintf(w, "\t%d -> %d;\n", e[0], e[1]); err != nil {
				return err
			}
		}
	} else {
		if _, err := fmt.Fprintf(w, "graph %s {\n", name); err != nil {
			return err
		}
		for _, e := range g.Edges() {
			if _, err := fmt.Fprintf(w, "\t%d -- %d;\n", e[0], e[1]); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
