// Package ioformat reads the plain-text edge-list input format this system
// accepts and writes the compact, graph6-style motif-code output format,
// following the teacher's configurable Text-reader idiom (readtext.go):
// skip comment lines, split on whitespace, track the highest node index
// seen to size the graph.
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedInput reports a line that isn't a valid "u v" pair.
var ErrMalformedInput = errors.New("ioformat: malformed input line")

// ReadOptions controls ReadEdgeList's handling of edge cases the input
// format allows.
type ReadOptions struct {
	// IncludeLoops keeps self-loop edges (u == v) instead of dropping them.
	IncludeLoops bool
}

// ReadEdgeList reads whitespace-separated "u v" pairs, one per line,
// 1-based vertex indices (index 0 is a malformed-input error), returning
// the graph order (the highest index seen), the 0-based edge list, and a
// list of non-fatal diagnostics (dropped self-loops, collapsed duplicate
// edges) the caller may log or discard. Blank lines and lines starting with
// '#' are skipped.
func ReadEdgeList(r io.Reader, opts ReadOptions) (n int, edges [][2]int, warnings []string, err error) {
	scanner := bufio.NewScanner(r)
	seen := map[[2]int]bool{}
	lineNo := 0
	maxIdx := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, nil, nil, fmt.Errorf("ioformat: line %d: expected 2 fields, got %d: %w", lineNo, len(fields), ErrMalformedInput)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return 0, nil, nil, fmt.Errorf("ioformat: line %d: non-numeric endpoint: %w", lineNo, ErrMalformedInput)
		}
		if u < 1 || v < 1 {
			return 0, nil, nil, fmt.Errorf("ioformat: line %d: vertex index must be >= 1, got (%d,%d): %w", lineNo, u, v, ErrMalformedInput)
		}
		if u > maxIdx {
			maxIdx = u
		}
		if v > maxIdx {
			maxIdx = v
		}

		u0, v0 := u-1, v-1
		if u0 == v0 {
			if !opts.IncludeLoops {
				warnings = append(warnings, fmt.Sprintf("line %d: dropped self-loop at vertex %d", lineNo, u))
				continue
			}
		}
		key := [2]int{u0, v0}
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("line %d: collapsed duplicate edge (%d,%d)", lineNo, u, v))
			continue
		}
		seen[key] = true
		edges = append(edges, key)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, nil, err
	}
	return maxIdx, edges, warnings, nil
}
