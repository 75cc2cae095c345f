package graph

import (
	"sort"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// ToAutomaton converts g into an NFA whose states are g's nodes. starts
// and finals select the automaton's initial and accepting states; an
// empty starts/finals set means "every node", matching the "with
// defaults" behavior described for regular_query in §8/E1. Parallel
// edges sharing the same (From, Label, To) collapse into one transition,
// per the Labeled directed multigraph invariant in §3.
func (g *Graph) ToAutomaton(starts, finals []Node) (*automaton.FA, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	fa := automaton.New(automaton.NFA)
	ids := make(map[Node]automaton.StateID, len(nodes))
	for _, n := range nodes {
		ids[n] = fa.AddState()
	}

	for _, n := range nodes {
		for to, edges := range g.adjacency[n] {
			seen := make(map[string]struct{}, len(edges))
			for _, e := range edges {
				if _, dup := seen[e.Label]; dup {
					continue
				}
				seen[e.Label] = struct{}{}
				if err := fa.AddTransition(ids[n], symbol.NewTerminal(e.Label), ids[to]); err != nil {
					return nil, err
				}
			}
		}
	}

	startSet := starts
	if len(startSet) == 0 {
		startSet = nodes
	}
	finalSet := finals
	if len(finalSet) == 0 {
		finalSet = nodes
	}
	for _, n := range startSet {
		id, ok := ids[n]
		if !ok {
			return nil, ErrNodeNotFound
		}
		if err := fa.SetStart(id); err != nil {
			return nil, err
		}
	}
	for _, n := range finalSet {
		id, ok := ids[n]
		if !ok {
			return nil, ErrNodeNotFound
		}
		if err := fa.SetFinal(id); err != nil {
			return nil, err
		}
	}
	return fa, nil
}
