package rpq

import "github.com/Ixorlive/formal-lang-course/graph"

// Pair is one (u, v) reachability result from RegularQuery.
type Pair struct {
	From graph.Node
	To   graph.Node
}

// AccessibleResult is the union return type §4.3.2 describes as
// `set(v) | map(start → set(v))`. ForEach selects which field is
// populated: Combined for the joint-frontier mode, PerStart for the
// per-start-vertex mode.
type AccessibleResult struct {
	ForEach  bool
	Combined []graph.Node
	PerStart map[graph.Node][]graph.Node
}
