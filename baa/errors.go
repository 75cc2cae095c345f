package baa

import "errors"

// ErrEmptyAutomaton indicates Build was given an automaton with zero
// states; a BAA always needs at least one state to have well-defined
// start/final vector shapes.
var ErrEmptyAutomaton = errors.New("baa: automaton has no states")
