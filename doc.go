// Command-free library module formal-lang-course answers path queries over
// labeled directed multigraphs: regular path queries (RPQ), where the
// language is given by a regular expression, and context-free path
// queries (CFPQ), where it's given by a context-free or extended
// context-free grammar.
//
// Everything is organized under focused subpackages:
//
//	symbol/     — the terminal/variable/epsilon alphabet shared by every other package
//	boolmatrix/ — sparse Boolean matrix algebra: OR, product, Kronecker, block-diagonal, transitive closure
//	automaton/  — finite automaton value type, plus a regex → Thompson-NFA → minimal-DFA pipeline
//	graph/      — the labeled directed multigraph value type, edge-list ingestion, DOT export
//	rsm/        — recursive state machines (boxes of per-variable DFAs)
//	baa/        — the Boolean adjacency automaton: the shared substrate for intersection and closure
//	rpq/        — regex path queries: intersect+closure, multi-source BFS accessibility, FA intersection
//	cfg/        — context-free grammars: text parsing, weak Chomsky normal form
//	ecfg/       — extended CFGs (one regex body per variable) and their RSM compilation
//	cfpq/       — Hellings and matrix-fixpoint CFPQ engines
//	query/      — the library-surface facade tying all of the above together
package formallangcourse
