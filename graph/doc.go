// Package graph implements the labeled directed multigraph value described
// in §3/§4.1: nodes drawn from an opaque hashable domain, edges are triples
// (u, ℓ, v), and multiple edges sharing the same triple collapse to one
// when the graph is converted into an automaton.
//
// Graph follows lvlath's core.Graph shape — sync.RWMutex-guarded storage,
// auto-vivifying AddEdge, sentinel errors — generalized from weighted
// edges to edges carrying a string label, which ToAutomaton turns into a
// symbol.Symbol terminal. New takes no options. It adds the
// one conversion the rest of the engines need: ToAutomaton, which turns a
// graph plus a chosen start/final node set into an automaton.FA ready for
// BAA construction.
package graph
