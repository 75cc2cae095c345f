package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Ixorlive/formal-lang-course/symbol"
)

// stateSet is a canonical, comparable key for a set of StateIDs, used to
// dedupe subset-construction states.
type stateSet map[StateID]struct{}

func (s stateSet) key() string {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// EpsilonClosure returns the set of states reachable from `from` using
// zero or more ε-transitions (from included). Only meaningful on an
// EpsilonNFA; on an NFA/DFA it degenerates to `from` itself since there
// are no ε-edges to traverse.
// Complexity: O(|Q| + |δ|) via a worklist BFS over ε-edges.
func (f *FA) EpsilonClosure(from map[StateID]struct{}) map[StateID]struct{} {
	f.mu.RLock()
	defer f.mu.RUnlock()

	closure := make(map[StateID]struct{}, len(from))
	var stack []StateID
	for s := range from {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range f.delta[s][symbol.Eps] {
			if _, seen := closure[t]; !seen {
				closure[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// Determinize converts f (an ε-NFA or NFA) into an equivalent DFA via the
// subset construction: each DFA state is the ε-closure of a set of f
// states, reached by taking every possible symbol transition out of the
// current subset and closing again under ε. A dead state is NOT added for
// missing transitions (the DFA is partial); Minimize keeps it partial too,
// treating a missing transition as a class of its own.
// Complexity: O(2^|Q| * |Σ|) worst case, O(|Q|*|Σ|) typical for automata
// built by regex Thompson construction.
func (f *FA) Determinize() (*FA, error) {
	f.mu.RLock()
	labels := f.Labels()
	startClosure := f.EpsilonClosure(f.start)
	f.mu.RUnlock()

	out := New(DFA)
	subsetToState := make(map[string]StateID)
	subsets := make(map[string]map[StateID]struct{})

	register := func(set map[StateID]struct{}) StateID {
		key := stateSet(set).key()
		if id, ok := subsetToState[key]; ok {
			return id
		}
		id := out.AddState()
		subsetToState[key] = id
		subsets[key] = set
		for s := range set {
			if f.IsFinal(s) {
				_ = out.SetFinal(id)
				break
			}
		}
		return id
	}

	startID := register(startClosure)
	if err := out.SetStart(startID); err != nil {
		return nil, err
	}

	queue := []string{stateSet(startClosure).key()}
	visited := map[string]bool{queue[0]: true}

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		current := subsets[key]
		currentID := subsetToState[key]

		for _, lbl := range labels {
			if lbl.IsEpsilon() {
				continue
			}
			var moved map[StateID]struct{}
			for s := range current {
				for t := range f.Targets(s, lbl) {
					if moved == nil {
						moved = make(map[StateID]struct{})
					}
					moved[t] = struct{}{}
				}
			}
			if len(moved) == 0 {
				continue
			}
			closure := f.EpsilonClosure(moved)
			targetID := register(closure)
			if err := out.AddTransition(currentID, lbl, targetID); err != nil {
				return nil, err
			}
			newKey := stateSet(closure).key()
			if !visited[newKey] {
				visited[newKey] = true
				queue = append(queue, newKey)
			}
		}
	}

	return out, nil
}
