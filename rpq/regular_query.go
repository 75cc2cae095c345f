package rpq

import (
	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/baa"
	"github.com/Ixorlive/formal-lang-course/graph"
)

// Intersect computes BAA(a) ∩ BAA(b) and materializes it back to an FA,
// per §4.3.3. RegularQuery runs the same baa.Intersection step directly,
// without the round trip through an FA; the BFS engine in
// find_accessible.go does not build the intersection at all.
func Intersect(a, b *automaton.FA) (*automaton.FA, error) {
	ba, err := baa.Build(a)
	if err != nil {
		return nil, err
	}
	bb, err := baa.Build(b)
	if err != nil {
		return nil, err
	}
	inter, err := baa.Intersection(ba, bb)
	if err != nil {
		return nil, err
	}
	return inter.ToFA()
}

// RegularQuery answers "which (u, v) pairs are connected by a path whose
// labels spell a word in L(pattern)", via §4.3.1's intersect-then-close
// algorithm: build the graph's NFA and the regex's minimal DFA, intersect
// their BAAs, take the transitive closure, then recover original graph
// nodes from the Kronecker-product indices.
//
// starts/finals default to every node in gr when empty, matching E1's
// "with defaults" scenario.
func RegularQuery(pattern string, gr *graph.Graph, starts, finals []graph.Node) ([]Pair, error) {
	nodeOrder := gr.NodeOrder()
	if len(nodeOrder) == 0 {
		return nil, ErrEmptyGraph
	}

	bg, err := gr.ToAutomaton(starts, finals)
	if err != nil {
		return nil, err
	}
	dr, err := automaton.MinimalDFAFromRegex(pattern, automaton.TerminalResolver)
	if err != nil {
		return nil, err
	}

	bgBaa, err := baa.Build(bg)
	if err != nil {
		return nil, err
	}
	brBaa, err := baa.Build(dr)
	if err != nil {
		return nil, err
	}

	// Graph is the outer Kronecker factor, regex the inner one, so a
	// global index divides by BR.n to recover the graph-node index —
	// matching reg_querying.py's graph_matrix.get_intersection(regex_matrix).
	c, err := baa.Intersection(bgBaa, brBaa)
	if err != nil {
		return nil, err
	}
	regexN := brBaa.NumStates

	tc, err := c.TransitiveClosure()
	if err != nil {
		return nil, err
	}

	var out []Pair
	for _, rc := range tc.Nonzeros() {
		iu, iv := rc[0], rc[1]
		startBit, err := c.Start.Get(0, iu)
		if err != nil {
			return nil, err
		}
		if !startBit {
			continue
		}
		finalBit, err := c.Final.Get(0, iv)
		if err != nil {
			return nil, err
		}
		if !finalBit {
			continue
		}
		out = append(out, Pair{From: nodeOrder[iu/regexN], To: nodeOrder[iv/regexN]})
	}
	return out, nil
}
