package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

func TestAddEdge_AutoVivifiesNodes(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")

	assert.True(t, g.HasNode("0"))
	assert.True(t, g.HasNode("1"))
	assert.ElementsMatch(t, []graph.Node{"1"}, g.Neighbors("0"))
}

func TestParseEdgeList(t *testing.T) {
	input := "0 1 a\n0 2 b\n\n1 3 c\n2 3 d\n3 4 e\n"
	g, err := graph.ParseEdgeList(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumNodes())
	assert.Len(t, g.Edges(), 5)
}

func TestParseEdgeList_MalformedLine(t *testing.T) {
	_, err := graph.ParseEdgeList(strings.NewReader("0 1\n"))
	assert.ErrorIs(t, err, graph.ErrMalformedEdgeLine)

	_, err = graph.ParseEdgeList(strings.NewReader("x 1 a\n"))
	assert.ErrorIs(t, err, graph.ErrMalformedEdgeLine)
}

func TestToAutomaton_DefaultsToAllNodes(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("1", "b", "2")

	fa, err := g.ToAutomaton(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, fa.NumStates())
	assert.Len(t, fa.StartStates(), 3)
	assert.Len(t, fa.FinalStates(), 3)
}

func TestToAutomaton_ParallelEdgesCollapse(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("0", "a", "1") // duplicate triple

	fa, err := g.ToAutomaton([]graph.Node{"0"}, []graph.Node{"1"})
	require.NoError(t, err)

	count := 0
	fa.EachTransition(func(_ automaton.StateID, _ symbol.Symbol, _ automaton.StateID) {
		count++
	})
	assert.Equal(t, 1, count, "duplicate (from,label,to) triples collapse to one transition")
}

func TestToAutomaton_UnknownStartRejected(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")

	_, err := g.ToAutomaton([]graph.Node{"99"}, nil)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestWriteDOT(t *testing.T) {
	g := graph.New()
	g.AddEdge("0", "a", "1")

	var buf strings.Builder
	require.NoError(t, g.WriteDOT(&buf))
	out := buf.String()
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, `"0" -> "1" [label="a"]`)
}
