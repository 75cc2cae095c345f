package rpq

import "errors"

// ErrEmptyGraph indicates a query was run against a graph with no nodes,
// which leaves BG with zero states and no well-defined BAA shape.
var ErrEmptyGraph = errors.New("rpq: graph has no nodes")
