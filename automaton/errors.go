package automaton

import "errors"

// Sentinel errors for automaton construction and transformation.
var (
	// ErrUnknownState indicates a StateID not produced by this FA's own
	// AddState was used in a transition or start/final marker.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrEpsilonNotAllowed indicates an ε-transition was added to an FA
	// built as NFA or DFA (only EpsilonNFA permits ε-edges).
	ErrEpsilonNotAllowed = errors.New("automaton: epsilon transition not allowed in this automaton kind")

	// ErrNotDeterministic indicates Minimize (or another DFA-only
	// operation) was called on an automaton that has ε-transitions or a
	// state with more than one outgoing edge per symbol, or more than
	// one start state.
	ErrNotDeterministic = errors.New("automaton: operation requires a deterministic automaton")

	// ErrEmptyRegex indicates an empty pattern string was given to the
	// regex parser.
	ErrEmptyRegex = errors.New("automaton: empty regular expression")

	// ErrRegexSyntax indicates the regex parser could not parse the
	// pattern (unbalanced parentheses, dangling operator, ...).
	ErrRegexSyntax = errors.New("automaton: regular expression syntax error")
)
