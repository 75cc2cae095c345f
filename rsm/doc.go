// Package rsm implements the recursive state machine value described in
// §3/§4.7: a pair (start symbol, boxes), where boxes maps each ECFG
// variable to a minimized DFA over T ∪ V accepting that variable's
// regular-expression production body. A DFA edge labeled with a variable
// is a recursive call into that variable's own box. Flattening the boxes
// into one Boolean adjacency automaton is done by package baa
// (baa.FromRSM), kept separate so this package only depends on automaton
// and never needs to know about Boolean matrices; that flattening keeps
// variable-labeled edges as ordinary labeled edges and does not resolve
// the calls, which is left to the caller.
package rsm
