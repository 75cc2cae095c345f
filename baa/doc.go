// Package baa implements the Boolean adjacency automaton (BAA) described
// in §3/§4.2: the canonical matrix form of a finite automaton — one
// boolmatrix.Matrix per label plus 1×n start/final row vectors — used as
// the shared substrate for automaton intersection (Kronecker product),
// transitive closure, and RSM flattening.
//
// BAA depends on automaton and rsm only through their read-only shapes
// (states, transitions, start/final accessors), never the reverse, which
// is what keeps automaton ↔ baa ↔ rsm from becoming a dependency cycle
// (see the core design notes, §9).
package baa
