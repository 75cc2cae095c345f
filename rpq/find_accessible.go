package rpq

import (
	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/baa"
	"github.com/Ixorlive/formal-lang-course/boolmatrix"
	"github.com/Ixorlive/formal-lang-course/graph"
)

// FindAccessible answers §4.3.2's multi-source BFS accessibility query:
// which graph vertices are reachable from the start set by a word in
// L(pattern), without materializing the full intersection automaton.
//
// When forEach is false, the result's Combined field holds every vertex
// reachable from any start vertex. When forEach is true, PerStart maps
// each start vertex to the set of vertices it individually reaches.
func FindAccessible(pattern string, gr *graph.Graph, starts, finals []graph.Node, forEach bool) (*AccessibleResult, error) {
	nodeOrder := gr.NodeOrder()
	if len(nodeOrder) == 0 {
		return nil, ErrEmptyGraph
	}

	bg, err := gr.ToAutomaton(starts, finals)
	if err != nil {
		return nil, err
	}
	dr, err := automaton.MinimalDFAFromRegex(pattern, automaton.TerminalResolver)
	if err != nil {
		return nil, err
	}

	bgBaa, err := baa.Build(bg)
	if err != nil {
		return nil, err
	}
	brBaa, err := baa.Build(dr)
	if err != nil {
		return nil, err
	}

	return findAccessibleByMatrices(bgBaa, brBaa, nodeOrder, forEach)
}

func nonzeroRowCols(v *boolmatrix.Matrix) []int {
	var out []int
	for _, rc := range v.Nonzeros() {
		out = append(out, rc[1])
	}
	return out
}

// findAccessibleByMatrices ports reg_querying.py's find_accessible_by_matrices:
// it builds a front matrix over (DFA state, graph state) pairs, advances it
// label by label until the union of all fronts reached so far (sum) stops
// growing, then reads reachable graph vertices off of sum's rows.
func findAccessibleByMatrices(bg, br *baa.BAA, nodeOrder []graph.Node, forEach bool) (*AccessibleResult, error) {
	q := br.NumStates
	n := bg.NumStates

	bgStarts := nonzeroRowCols(bg.Start)
	brStarts := nonzeroRowCols(br.Start)
	brFinals := nonzeroRowCols(br.Final)
	bgFinalSet := make(map[int]struct{})
	for _, c := range nonzeroRowCols(bg.Final) {
		bgFinalSet[c] = struct{}{}
	}

	k := len(bgStarts)
	m := 1
	if forEach {
		m = k
	}
	rows, cols := q*m, q+n

	front, err := boolmatrix.NewZero(rows, cols)
	if err != nil {
		return nil, err
	}
	if forEach {
		for i, s := range bgStarts {
			for _, j := range brStarts {
				idx := q*i + j
				if err := front.Set(idx, j); err != nil {
					return nil, err
				}
				if err := front.Set(idx, q+s); err != nil {
					return nil, err
				}
			}
		}
	} else {
		for _, j := range brStarts {
			if err := front.Set(j, j); err != nil {
				return nil, err
			}
			for _, s := range bgStarts {
				if err := front.Set(j, q+s); err != nil {
					return nil, err
				}
			}
		}
	}

	var transitions []*boolmatrix.Matrix
	for lbl, mr := range br.Adj {
		mg, ok := bg.Adj[lbl]
		if !ok {
			continue
		}
		t, err := boolmatrix.BlockDiag(mr, mg)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	sumFronts, err := boolmatrix.NewZero(rows, cols)
	if err != nil {
		return nil, err
	}
	prevNNZ := -1
	for sumFronts.NNZ() != prevNNZ {
		prevNNZ = sumFronts.NNZ()

		newFront, err := boolmatrix.NewZero(rows, cols)
		if err != nil {
			return nil, err
		}
		for _, t := range transitions {
			allState, err := boolmatrix.Mul(front, t)
			if err != nil {
				return nil, err
			}
			dfaHits := make(map[int][]int)
			graphCols := make(map[int][]int)
			for _, rc := range allState.Nonzeros() {
				row, col := rc[0], rc[1]
				if col < q {
					dfaHits[row] = append(dfaHits[row], col)
				} else {
					graphCols[row] = append(graphCols[row], col-q)
				}
			}
			for row, ts := range dfaHits {
				block := row / q
				for _, t2 := range ts {
					nRow := q*block + t2
					if err := newFront.Set(nRow, t2); err != nil {
						return nil, err
					}
					for _, c := range graphCols[row] {
						if err := newFront.Set(nRow, q+c); err != nil {
							return nil, err
						}
					}
				}
			}
		}
		front = newFront
		if _, err := sumFronts.OrInPlace(front); err != nil {
			return nil, err
		}
	}

	return extractAccessible(q, bgStarts, brFinals, bgFinalSet, sumFronts, nodeOrder, forEach)
}

func reachedGraphCols(sumFronts *boolmatrix.Matrix, row, q int) []int {
	var out []int
	for _, rc := range sumFronts.Nonzeros() {
		if rc[0] == row && rc[1] >= q {
			out = append(out, rc[1]-q)
		}
	}
	return out
}

func extractAccessible(q int, bgStarts, brFinals []int, bgFinalSet map[int]struct{}, sumFronts *boolmatrix.Matrix, nodeOrder []graph.Node, forEach bool) (*AccessibleResult, error) {
	collectFromRow := func(row int) []graph.Node {
		var out []graph.Node
		for _, c := range reachedGraphCols(sumFronts, row, q) {
			if _, ok := bgFinalSet[c]; ok {
				out = append(out, nodeOrder[c])
			}
		}
		return out
	}

	if forEach {
		perStart := make(map[graph.Node][]graph.Node)
		for i, s := range bgStarts {
			seen := make(map[graph.Node]struct{})
			var reached []graph.Node
			for _, f := range brFinals {
				idx := q*i + f
				ok, err := sumFronts.Get(idx, f)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				for _, v := range collectFromRow(idx) {
					if _, dup := seen[v]; dup {
						continue
					}
					seen[v] = struct{}{}
					reached = append(reached, v)
				}
			}
			if len(reached) > 0 {
				perStart[nodeOrder[s]] = reached
			}
		}
		return &AccessibleResult{ForEach: true, PerStart: perStart}, nil
	}

	seen := make(map[graph.Node]struct{})
	var combined []graph.Node
	for _, f := range brFinals {
		ok, err := sumFronts.Get(f, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		for _, v := range collectFromRow(f) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			combined = append(combined, v)
		}
	}
	return &AccessibleResult{Combined: combined}, nil
}
