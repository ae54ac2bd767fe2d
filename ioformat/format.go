package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NodeDictionary re-indexes arbitrary whitespace-separated node labels into
// compact, 1-based, discovery-order numeric ids, the way the `format`
// subcommand's input-preparation step works: most real edge lists name
// nodes with strings (gene names, user handles, ...) rather than already
// being a dense 1..n numbering, so this step canonicalizes that numbering
// once up front instead of asking every other subcommand to handle
// arbitrary labels.
type NodeDictionary struct {
	// Edges holds the re-indexed, 0-based edge list.
	Edges [][2]int
	// Labels maps each original label to its assigned 1-based id.
	Labels map[string]int
	// NumFiltered counts self-loop lines dropped because filterLoops was set.
	NumFiltered int
}

// BuildNodeDictionary reads whitespace-separated "label1 label2" pairs, one
// per line, assigning each distinct label a 1-based id the first time it is
// seen. When filterLoops is set, lines whose two labels are identical are
// dropped and counted instead of producing a self-loop edge.
func BuildNodeDictionary(r io.Reader, filterLoops bool) (*NodeDictionary, error) {
	scanner := bufio.NewScanner(r)
	dict := &NodeDictionary{Labels: map[string]int{}}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ioformat: line %d: expected 2 fields, got %d: %w", lineNo, len(fields), ErrMalformedInput)
		}
		u, v := fields[0], fields[1]

		if filterLoops && u == v {
			dict.NumFiltered++
			continue
		}

		if _, ok := dict.Labels[u]; !ok {
			dict.Labels[u] = len(dict.Labels) + 1
		}
		if _, ok := dict.Labels[v]; !ok {
			dict.Labels[v] = len(dict.Labels) + 1
		}
		dict.Edges = append(dict.Edges, [2]int{dict.Labels[u] - 1, dict.Labels[v] - 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dict, nil
}

// WriteEdgeList writes a 1-based "u v" edge list, the format ReadEdgeList
// accepts back in.
func WriteEdgeList(w io.Writer, edges [][2]int) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", e[0]+1, e[1]+1); err != nil {
			return err
		}
	}
	return nil
}

// WriteNodeDict writes each original label next to its assigned 1-based id,
// one per line.
func WriteNodeDict(w io.Writer, labels map[string]int) error {
	for label, id := range labels {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", label, id); err != nil {
			return err
		}
	}
	return nil
}
