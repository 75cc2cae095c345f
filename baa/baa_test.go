package baa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/baa"
	"github.com/Ixorlive/formal-lang-course/rsm"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

func smallFA(t *testing.T) *automaton.FA {
	t.Helper()
	a := symbol.NewTerminal("a")
	b := symbol.NewTerminal("b")

	fa := automaton.New(automaton.NFA)
	s0 := fa.AddState()
	s1 := fa.AddState()
	s2 := fa.AddState()
	require.NoError(t, fa.AddTransition(s0, a, s1))
	require.NoError(t, fa.AddTransition(s1, b, s2))
	require.NoError(t, fa.SetStart(s0))
	require.NoError(t, fa.SetFinal(s2))
	return fa
}

func TestBuild_EmptyAutomatonRejected(t *testing.T) {
	fa := automaton.New(automaton.NFA)
	_, err := baa.Build(fa)
	assert.ErrorIs(t, err, baa.ErrEmptyAutomaton)
}

func TestBuild_ShapeAndBits(t *testing.T) {
	fa := smallFA(t)
	m, err := baa.Build(fa)
	require.NoError(t, err)

	assert.Equal(t, 3, m.NumStates)
	assert.Len(t, m.Adj, 2)

	ok, err := m.Start.Get(0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Final.Get(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_ToFA_RoundTrips(t *testing.T) {
	fa := smallFA(t)
	m, err := baa.Build(fa)
	require.NoError(t, err)

	back, err := m.ToFA()
	require.NoError(t, err)
	assert.Equal(t, fa.NumStates(), back.NumStates())
	assert.ElementsMatch(t, fa.StartStates(), back.StartStates())
	assert.ElementsMatch(t, fa.FinalStates(), back.FinalStates())
}

func TestIntersection_SharedLabelOnly(t *testing.T) {
	a := symbol.NewTerminal("a")
	c := symbol.NewTerminal("c")

	left := automaton.New(automaton.NFA)
	l0 := left.AddState()
	l1 := left.AddState()
	require.NoError(t, left.AddTransition(l0, a, l1))
	require.NoError(t, left.SetStart(l0))
	require.NoError(t, left.SetFinal(l1))

	right := automaton.New(automaton.NFA)
	r0 := right.AddState()
	r1 := right.AddState()
	require.NoError(t, right.AddTransition(r0, a, r1))
	require.NoError(t, right.AddTransition(r0, c, r1))
	require.NoError(t, right.SetStart(r0))
	require.NoError(t, right.SetFinal(r1))

	lm, err := baa.Build(left)
	require.NoError(t, err)
	rm, err := baa.Build(right)
	require.NoError(t, err)

	inter, err := baa.Intersection(lm, rm)
	require.NoError(t, err)

	assert.Equal(t, 4, inter.NumStates)
	assert.Len(t, inter.Adj, 1, "only the shared label 'a' should survive intersection")

	tc, err := inter.TransitiveClosure()
	require.NoError(t, err)
	ok, err := tc.Get(0, 3)
	require.NoError(t, err)
	assert.True(t, ok, "start (0,0)=idx0 should reach final (1,1)=idx3 via shared 'a'")
}

func TestTransitiveClosure_AcrossLabels(t *testing.T) {
	fa := smallFA(t)
	m, err := baa.Build(fa)
	require.NoError(t, err)

	tc, err := m.TransitiveClosure()
	require.NoError(t, err)
	ok, err := tc.Get(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFromRSM_FlattensBoxes(t *testing.T) {
	s := symbol.NewVariable("S")
	a := symbol.NewTerminal("a")

	box := automaton.New(automaton.DFA)
	b0 := box.AddState()
	b1 := box.AddState()
	require.NoError(t, box.AddTransition(b0, a, b1))
	require.NoError(t, box.SetStart(b0))
	require.NoError(t, box.SetFinal(b1))

	r := rsm.New(s, map[symbol.Symbol]*automaton.FA{s: box})
	flat, err := baa.FromRSM(r)
	require.NoError(t, err)

	assert.Equal(t, 2, flat.NumStates)
	ok, err := flat.Start.Get(0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = flat.Final.Get(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFromRSM_EmptyRejected(t *testing.T) {
	r := rsm.New(symbol.NewVariable("S"), map[symbol.Symbol]*automaton.FA{})
	_, err := baa.FromRSM(r)
	assert.ErrorIs(t, err, baa.ErrEmptyAutomaton)
}
