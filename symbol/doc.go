// Package symbol defines the alphabet element shared by every engine in the
// module: graph edges, CFG terminals, CFG variables, and automaton
// transition labels are all symbol.Symbol values.
//
// A Symbol is a small, comparable value (safe as a map key) tagged with a
// Kind so that the same payload string ("S") can never be confused between
// a terminal and a variable, and so the distinguished epsilon symbol never
// collides with a literal label named "eps" or "".
package symbol
