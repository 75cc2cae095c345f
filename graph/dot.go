package graph

import (
	"fmt"
	"io"
	"sort"
)

// WriteDOT serializes g as a Graphviz DOT digraph, one "label" attribute
// per edge (§6 Persistence: "Graphs may be written to DOT; no other file
// formats are required"). Reading DOT back in is an external-collaborator
// concern (§1 Out of scope) and is not implemented here.
func (g *Graph) WriteDOT(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}

	nodes := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "  %q;\n", string(n)); err != nil {
			return err
		}
	}

	for _, from := range nodes {
		tos := make([]Node, 0, len(g.adjacency[from]))
		for to := range g.adjacency[from] {
			tos = append(tos, to)
		}
		sort.Slice(tos, func(i, j int) bool { return tos[i] < tos[j] })
		for _, to := range tos {
			for _, e := range g.adjacency[from][to] {
				if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n", string(from), string(to), e.Label); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
