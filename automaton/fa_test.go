package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

func TestAddTransition_EpsilonRejectedOutsideEpsilonNFA(t *testing.T) {
	fa := automaton.New(automaton.NFA)
	s := fa.AddState()
	f := fa.AddState()
	err := fa.AddTransition(s, symbol.Eps, f)
	assert.ErrorIs(t, err, automaton.ErrEpsilonNotAllowed)
}

func TestAddTransition_UnknownState(t *testing.T) {
	fa := automaton.New(automaton.NFA)
	s := fa.AddState()
	err := fa.AddTransition(s, symbol.NewTerminal("a"), automaton.StateID(99))
	assert.ErrorIs(t, err, automaton.ErrUnknownState)
}

func TestDFA_RejectsSecondStart(t *testing.T) {
	fa := automaton.New(automaton.DFA)
	s1 := fa.AddState()
	s2 := fa.AddState()
	require.NoError(t, fa.SetStart(s1))
	err := fa.SetStart(s2)
	assert.ErrorIs(t, err, automaton.ErrNotDeterministic)
}

func TestDFA_RejectsNondeterministicTransition(t *testing.T) {
	fa := automaton.New(automaton.DFA)
	s := fa.AddState()
	t1 := fa.AddState()
	t2 := fa.AddState()
	require.NoError(t, fa.AddTransition(s, symbol.NewTerminal("a"), t1))
	err := fa.AddTransition(s, symbol.NewTerminal("a"), t2)
	assert.ErrorIs(t, err, automaton.ErrNotDeterministic)
}

func TestMinimize_RequiresDFA(t *testing.T) {
	fa := automaton.New(automaton.NFA)
	s := fa.AddState()
	_ = fa.SetStart(s)
	_, err := fa.Minimize()
	assert.NoError(t, err) // a trivial NFA with deterministic shape still minimizes

	multi := automaton.New(automaton.NFA)
	a := multi.AddState()
	b := multi.AddState()
	c := multi.AddState()
	_ = multi.SetStart(a)
	_ = multi.AddTransition(a, symbol.NewTerminal("x"), b)
	_ = multi.AddTransition(a, symbol.NewTerminal("x"), c)
	_, err = multi.Minimize()
	assert.ErrorIs(t, err, automaton.ErrNotDeterministic)
}

func TestMinimize_MergesEquivalentStates(t *testing.T) {
	// Two DFA states (both final, both dead-ending), reached from the start
	// on "a" and on "b", are equivalent and should merge into one.
	fa := automaton.New(automaton.DFA)
	s := fa.AddState()
	b1 := fa.AddState()
	b2 := fa.AddState()
	require.NoError(t, fa.SetStart(s))
	require.NoError(t, fa.SetFinal(b1))
	require.NoError(t, fa.SetFinal(b2))
	require.NoError(t, fa.AddTransition(s, symbol.NewTerminal("a"), b1))
	require.NoError(t, fa.AddTransition(s, symbol.NewTerminal("b"), b2))

	min, err := fa.Minimize()
	require.NoError(t, err)
	assert.Equal(t, 2, min.NumStates()) // start + one merged accepting state
}

func TestRemoveUnreachable(t *testing.T) {
	fa := automaton.New(automaton.NFA)
	s := fa.AddState()
	reachable := fa.AddState()
	unreachable := fa.AddState()
	_ = unreachable
	require.NoError(t, fa.SetStart(s))
	require.NoError(t, fa.AddTransition(s, symbol.NewTerminal("a"), reachable))

	out := fa.RemoveUnreachable()
	assert.Equal(t, 2, out.NumStates())
}
