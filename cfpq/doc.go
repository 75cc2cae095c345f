// Package cfpq implements the two independent CFPQ engines from §4.5/§4.6
// — Hellings (a worklist fixpoint over (node, nonterminal, node) triples)
// and the matrix engine (an iterative Boolean-matrix fixpoint, one matrix
// per nonterminal) — plus reachability_with_nonterminal, which runs
// either engine and filters its result to one nonterminal and a
// start/final vertex selection.
//
// Grounded on original_source/project/cfqp.py: hellings and matrix mirror
// that file's two functions (the worklist refinement here replaces the
// Python's O(n^3) per-iteration product(graph.nodes, repeat=3) enumeration
// with index-joined combination, per §5's "Implementations are free to
// use a worklist queue... both strategies must reach the identical least
// fixpoint"), and reachability_with_nonterminal mirrors the Python
// function of the same name.
package cfpq
