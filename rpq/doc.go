// Package rpq implements the §4.3 regular path query surface: intersecting
// two automata, answering "which (u, v) pairs are regex-connected" over a
// graph, and the multi-source BFS accessibility query that answers "which
// vertices are reachable from a start set along a regex-labeled path"
// without materializing the full intersection automaton.
//
// All three operations are ported from original_source/project's
// reg_querying.py: Intersect from intersect(), RegularQuery from
// regular_query(), and FindAccessible from find_accessible_by_matrices()
// and its four helpers (_initialize_state_matrices, _create_transitions,
// _compute_sum_fronts, _compute_result). The Kronecker-product index
// arithmetic in RegularQuery and the front-matrix row rewriting in
// FindAccessible mirror that source exactly, including its combined vs.
// per-start-separated extraction modes.
package rpq
