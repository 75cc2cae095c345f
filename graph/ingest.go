package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEdgeList reads the edge-list text format from §6: one edge per
// non-blank line, "src dst label" whitespace-separated, both endpoints
// integer. Any line that fails to split into exactly three fields, or
// whose endpoints are not integers, is reported via ErrMalformedEdgeLine.
func ParseEdgeList(r io.Reader) (*Graph, error) {
	g := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformedEdgeLine, lineNo, len(fields))
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: src %q not an integer", ErrMalformedEdgeLine, lineNo, fields[0])
		}
		dst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: dst %q not an integer", ErrMalformedEdgeLine, lineNo, fields[1])
		}
		g.AddEdge(Node(strconv.Itoa(src)), fields[2], Node(strconv.Itoa(dst)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
