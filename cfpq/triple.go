package cfpq

import (
	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// Triple is one (u, A, v) reachability fact: node u derives node v via
// nonterminal A.
type Triple struct {
	From    graph.Node
	Nonterm symbol.Symbol
	To      graph.Node
}

// Pair is one (u, v) reachability fact with the nonterminal projected
// away, as returned by ReachabilityWithNonterminal.
type Pair struct {
	From graph.Node
	To   graph.Node
}
