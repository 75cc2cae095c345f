package rpq_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/rpq"
)

func sortedNodes(ns []graph.Node) []graph.Node {
	out := append([]graph.Node(nil), ns...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func pairSet(ps []rpq.Pair) map[[2]graph.Node]struct{} {
	out := make(map[[2]graph.Node]struct{}, len(ps))
	for _, p := range ps {
		out[[2]graph.Node{p.From, p.To}] = struct{}{}
	}
	return out
}

// E1: Graph 0-a->1, 0-b->2, 1-c->3, 2-d->3, 3-e->4.
func e1Graph() *graph.Graph {
	g := graph.New()
	g.AddEdge("0", "a", "1")
	g.AddEdge("0", "b", "2")
	g.AddEdge("1", "c", "3")
	g.AddEdge("2", "d", "3")
	g.AddEdge("3", "e", "4")
	return g
}

func TestRegularQuery_E1_Scoped(t *testing.T) {
	g := e1Graph()
	pairs, err := rpq.RegularQuery("a*(b|c)*e", g, []graph.Node{"0"}, []graph.Node{"4"})
	require.NoError(t, err)
	assert.Equal(t, map[[2]graph.Node]struct{}{{"0", "4"}: {}}, pairSet(pairs))
}

func TestRegularQuery_E1_Defaults(t *testing.T) {
	g := e1Graph()
	pairs, err := rpq.RegularQuery("a*(b|c)*e", g, nil, nil)
	require.NoError(t, err)
	want := map[[2]graph.Node]struct{}{
		{"0", "4"}: {},
		{"3", "4"}: {},
		{"1", "4"}: {},
	}
	assert.Equal(t, want, pairSet(pairs))
}

func TestRegularQuery_E1_NoMatch(t *testing.T) {
	g := e1Graph()
	pairs, err := rpq.RegularQuery("a(b|c)+e", g, []graph.Node{"0"}, []graph.Node{"4"})
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

// E2: Graph A-x->B, A-y->C, B-z->C, B-x->D, C-y->E, D-z->C, D-y->E, E-x->A.
func e2Graph() *graph.Graph {
	g := graph.New()
	g.AddEdge("A", "x", "B")
	g.AddEdge("A", "y", "C")
	g.AddEdge("B", "z", "C")
	g.AddEdge("B", "x", "D")
	g.AddEdge("C", "y", "E")
	g.AddEdge("D", "z", "C")
	g.AddEdge("D", "y", "E")
	g.AddEdge("E", "x", "A")
	return g
}

func TestFindAccessible_E2_Separated_SingleStep(t *testing.T) {
	g := e2Graph()
	res, err := rpq.FindAccessible("(x|y)", g, []graph.Node{"A", "C"}, nil, true)
	require.NoError(t, err)
	require.True(t, res.ForEach)

	got := make(map[graph.Node][]graph.Node, len(res.PerStart))
	for s, reached := range res.PerStart {
		got[s] = sortedNodes(reached)
	}
	assert.Equal(t, []graph.Node{"B", "C"}, got["A"])
	assert.Equal(t, []graph.Node{"E"}, got["C"])
}

func TestFindAccessible_E2_Separated_Star(t *testing.T) {
	g := e2Graph()
	starts := []graph.Node{"A", "B", "C", "D"}
	res, err := rpq.FindAccessible("(x|y)*", g, starts, nil, true)
	require.NoError(t, err)
	require.True(t, res.ForEach)

	want := sortedNodes([]graph.Node{"A", "B", "C", "D", "E"})
	for _, s := range starts {
		assert.Equalf(t, want, sortedNodes(res.PerStart[s]), "start=%s", s)
	}
}

func TestIntersect_Soundness(t *testing.T) {
	g := e1Graph()
	bg, err := g.ToAutomaton(nil, nil)
	require.NoError(t, err)

	other, err := g.ToAutomaton([]graph.Node{"0"}, []graph.Node{"4"})
	require.NoError(t, err)

	inter, err := rpq.Intersect(bg, other)
	require.NoError(t, err)
	assert.Positive(t, inter.NumStates())
}

// RPQ equivalence (§8 property 4): combined-mode BFS and intersection+TC
// must agree on the set of reached vertices.
func TestRegularQuery_AgreesWith_FindAccessible_Combined(t *testing.T) {
	g := e1Graph()
	pairs, err := rpq.RegularQuery("a*(b|c)*e", g, []graph.Node{"0"}, nil)
	require.NoError(t, err)

	acc, err := rpq.FindAccessible("a*(b|c)*e", g, []graph.Node{"0"}, nil, false)
	require.NoError(t, err)

	var fromPairs []graph.Node
	for _, p := range pairs {
		fromPairs = append(fromPairs, p.To)
	}
	assert.Equal(t, sortedNodes(fromPairs), sortedNodes(acc.Combined))
}

func TestRegularQuery_EmptyGraph(t *testing.T) {
	_, err := rpq.RegularQuery("a", graph.New(), nil, nil)
	assert.ErrorIs(t, err, rpq.ErrEmptyGraph)
}
