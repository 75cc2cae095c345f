package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// accepts runs a tiny BFS/DFS over an ε-NFA or NFA to check whether a
// sequence of terminal names is accepted, used to pin down Thompson
// construction semantics independent of Determinize/Minimize.
func accepts(t *testing.T, fa *automaton.FA, word []string) bool {
	t.Helper()
	current := make(map[automaton.StateID]struct{})
	for _, s := range fa.StartStates() {
		current[s] = struct{}{}
	}
	current = fa.EpsilonClosure(current)

	for _, tok := range word {
		next := make(map[automaton.StateID]struct{})
		for s := range current {
			for target := range fa.Targets(s, symbol.NewTerminal(tok)) {
				next[target] = struct{}{}
			}
		}
		current = fa.EpsilonClosure(next)
	}
	for s := range current {
		if fa.IsFinal(s) {
			return true
		}
	}
	return false
}

func TestCompileRegex_StarUnionConcat(t *testing.T) {
	fa, err := automaton.CompileRegex("a*(b|c)*e", automaton.TerminalResolver)
	require.NoError(t, err)

	assert.True(t, accepts(t, fa, []string{"e"}))
	assert.True(t, accepts(t, fa, []string{"a", "a", "b", "c", "e"}))
	assert.False(t, accepts(t, fa, []string{"a", "a"}))
	assert.False(t, accepts(t, fa, []string{"e", "a"}))
}

func TestCompileRegex_Plus(t *testing.T) {
	fa, err := automaton.CompileRegex("a(b|c)+e", automaton.TerminalResolver)
	require.NoError(t, err)

	assert.False(t, accepts(t, fa, []string{"a", "e"})) // + requires >= 1
	assert.True(t, accepts(t, fa, []string{"a", "b", "e"}))
	assert.True(t, accepts(t, fa, []string{"a", "b", "c", "b", "e"}))
}

func TestCompileRegex_Epsilon(t *testing.T) {
	fa, err := automaton.CompileRegex("$", automaton.TerminalResolver)
	require.NoError(t, err)
	assert.True(t, accepts(t, fa, nil))
	assert.False(t, accepts(t, fa, []string{"a"}))
}

func TestCompileRegex_Empty(t *testing.T) {
	_, err := automaton.CompileRegex("", automaton.TerminalResolver)
	assert.ErrorIs(t, err, automaton.ErrEmptyRegex)
}

func TestCompileRegex_SyntaxError(t *testing.T) {
	_, err := automaton.CompileRegex("(a|b", automaton.TerminalResolver)
	assert.ErrorIs(t, err, automaton.ErrRegexSyntax)

	_, err = automaton.CompileRegex("*a", automaton.TerminalResolver)
	assert.ErrorIs(t, err, automaton.ErrRegexSyntax)
}

func TestMinimalDFAFromRegex_AcceptsSameLanguage(t *testing.T) {
	dfa, err := automaton.MinimalDFAFromRegex("a*(b|c)*e", automaton.TerminalResolver)
	require.NoError(t, err)
	assert.Equal(t, automaton.DFA, dfa.Kind())
	assert.Len(t, dfa.StartStates(), 1)

	assert.True(t, accepts(t, dfa, []string{"a", "b", "c", "e"}))
	assert.False(t, accepts(t, dfa, []string{"a", "a"}))
}

func TestDeterminize_SingleStart(t *testing.T) {
	fa, err := automaton.CompileRegex("a|b", automaton.TerminalResolver)
	require.NoError(t, err)
	dfa, err := fa.Determinize()
	require.NoError(t, err)
	assert.Equal(t, automaton.DFA, dfa.Kind())
	assert.Len(t, dfa.StartStates(), 1)
	assert.True(t, accepts(t, dfa, []string{"a"}))
	assert.True(t, accepts(t, dfa, []string{"b"}))
	assert.False(t, accepts(t, dfa, []string{"c"}))
}
