// Package automaton implements the finite-automaton value described in
// §3/§4.3 of the core design: a labeled ε-NFA/NFA/DFA with start and final
// state sets, built either by hand (AddState/AddTransition), by Thompson
// construction from a regular expression over symbol.Symbol, or by
// converting a graph (see the graph package).
//
// States are small integer indices private to the automaton that produced
// them (State ↔ index mappings never escape the owning value, per the
// core's "opaque state identities" design note); every FA is immutable
// once returned — Determinize, Minimize, and the Thompson constructors
// all return a new value rather than mutating their receiver in place,
// except during the internal construction that has not yet escaped to a
// caller.
package automaton
