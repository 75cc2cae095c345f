package cfpq

import (
	"github.com/Ixorlive/formal-lang-course/cfg"
	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// Algo selects which CFPQ engine ReachabilityWithNonterminal runs.
type Algo string

const (
	AlgoHellings Algo = "hellings"
	AlgoMatrix   Algo = "matrix"
)

// ReachabilityWithNonterminal runs algo over (g, gr), then projects the
// resulting triples down to (u, v) pairs where the nonterminal is target
// and u/v lie in starts/finals, per §4.5/§4.6's shared query surface.
func ReachabilityWithNonterminal(
	g *cfg.CFG,
	gr *graph.Graph,
	starts, finals []graph.Node,
	target symbol.Symbol,
	algo Algo,
) ([]Pair, error) {
	var triples []Triple
	switch algo {
	case AlgoHellings:
		triples = Hellings(g, gr)
	case AlgoMatrix:
		var err error
		triples, err = Matrix(g, gr)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownAlgorithm
	}

	startSet := toSet(starts)
	finalSet := toSet(finals)

	var out []Pair
	for _, t := range triples {
		if t.Nonterm != target {
			continue
		}
		if _, ok := startSet[t.From]; !ok {
			continue
		}
		if _, ok := finalSet[t.To]; !ok {
			continue
		}
		out = append(out, Pair{From: t.From, To: t.To})
	}
	return out, nil
}

func toSet(nodes []graph.Node) map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{}, len(nodes))
	for _, n := range nodes {
		out[n] = struct{}{}
	}
	return out
}
