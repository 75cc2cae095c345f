package baa

import (
	"sort"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/boolmatrix"
	"github.com/Ixorlive/formal-lang-course/rsm"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// BAA is the Boolean adjacency automaton: for each label ℓ occurring in
// the source automaton's transition relation, Adj[ℓ] is an n×n Boolean
// matrix with Adj[ℓ][i,j] = true iff there is an ℓ-transition from state
// i to state j; Start and Final are 1×n row vectors marking the initial
// and accepting states. NumStates == n == Start.Cols() == Final.Cols(),
// and every matrix in Adj shares shape n×n — both are build invariants,
// never re-validated on read.
type BAA struct {
	NumStates int
	Adj       map[symbol.Symbol]*boolmatrix.Matrix
	Start     *boolmatrix.Matrix
	Final     *boolmatrix.Matrix
}

// Build converts fa into its Boolean adjacency form. fa's StateIDs are
// already the dense 0..n-1 indices the BAA needs (see automaton's "opaque
// state identities" design note), so Build just replays fa's transitions
// into per-label matrices.
// Complexity: O(|δ|) time, O(|Σ|*n^2) worst-case space (sparse in
// practice since each matrix only allocates entries it actually sets).
func Build(fa *automaton.FA) (*BAA, error) {
	n := fa.NumStates()
	if n == 0 {
		return nil, ErrEmptyAutomaton
	}

	out := &BAA{NumStates: n, Adj: make(map[symbol.Symbol]*boolmatrix.Matrix)}

	var buildErr error
	fa.EachTransition(func(from automaton.StateID, sym symbol.Symbol, to automaton.StateID) {
		if buildErr != nil {
			return
		}
		m, ok := out.Adj[sym]
		if !ok {
			var err error
			m, err = boolmatrix.NewZero(n, n)
			if err != nil {
				buildErr = err
				return
			}
			out.Adj[sym] = m
		}
		if err := m.Set(int(from), int(to)); err != nil {
			buildErr = err
		}
	})
	if buildErr != nil {
		return nil, buildErr
	}

	start, err := boolmatrix.NewRowVector(n)
	if err != nil {
		return nil, err
	}
	for _, s := range fa.StartStates() {
		if err := start.Set(0, int(s)); err != nil {
			return nil, err
		}
	}
	final, err := boolmatrix.NewRowVector(n)
	if err != nil {
		return nil, err
	}
	for _, s := range fa.FinalStates() {
		if err := final.Set(0, int(s)); err != nil {
			return nil, err
		}
	}
	out.Start = start
	out.Final = final
	return out, nil
}

// ToFA re-materializes b as an ε-NFA whose StateIDs are the BAA's own
// matrix indices. Any label present in Adj, including the distinguished
// epsilon symbol, becomes a transition.
func (b *BAA) ToFA() (*automaton.FA, error) {
	fa := automaton.New(automaton.EpsilonNFA)
	for i := 0; i < b.NumStates; i++ {
		fa.AddState()
	}
	labels := b.sortedLabels()
	for _, lbl := range labels {
		m := b.Adj[lbl]
		for _, rc := range m.Nonzeros() {
			if err := fa.AddTransition(automaton.StateID(rc[0]), lbl, automaton.StateID(rc[1])); err != nil {
				return nil, err
			}
		}
	}
	for _, rc := range b.Start.Nonzeros() {
		if err := fa.SetStart(automaton.StateID(rc[1])); err != nil {
			return nil, err
		}
	}
	for _, rc := range b.Final.Nonzeros() {
		if err := fa.SetFinal(automaton.StateID(rc[1])); err != nil {
			return nil, err
		}
	}
	return fa, nil
}

func (b *BAA) sortedLabels() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(b.Adj))
	for lbl := range b.Adj {
		out = append(out, lbl)
	}
	sort.Slice(out, func(i, j int) bool { return symbol.Less(out[i], out[j]) })
	return out
}

// Intersection computes a ∩ b (§4.2): for every label present in both
// automata, the Kronecker product of their per-label matrices; labels
// present in only one side are dropped entirely, since a transition only
// the left (or only the right) side can take can never be part of a word
// both automata accept. Start/Final are likewise Kronecker products.
// Contract: to_FA(Intersection(A,B)) recognizes L(A) ∩ L(B), modulo
// state renaming.
func Intersection(a, b *BAA) (*BAA, error) {
	out := &BAA{NumStates: a.NumStates * b.NumStates, Adj: make(map[symbol.Symbol]*boolmatrix.Matrix)}
	for lbl, ma := range a.Adj {
		mb, ok := b.Adj[lbl]
		if !ok {
			continue
		}
		k, err := boolmatrix.Kron(ma, mb)
		if err != nil {
			return nil, err
		}
		out.Adj[lbl] = k
	}
	start, err := boolmatrix.Kron(a.Start, b.Start)
	if err != nil {
		return nil, err
	}
	final, err := boolmatrix.Kron(a.Final, b.Final)
	if err != nil {
		return nil, err
	}
	out.Start = start
	out.Final = final
	return out, nil
}

// TransitiveClosure returns the label-agnostic reachability closure of b:
// R := OR over every label's matrix (including epsilon, if present); then
// R := R ∨ (R·R) repeated to a fixpoint. This is reachability of length
// >= 1 over any labeled edge, per §4.2.
func (b *BAA) TransitiveClosure() (*boolmatrix.Matrix, error) {
	combined, err := boolmatrix.NewZero(b.NumStates, b.NumStates)
	if err != nil {
		return nil, err
	}
	for _, m := range b.Adj {
		if _, err := combined.OrInPlace(m); err != nil {
			return nil, err
		}
	}
	return boolmatrix.TransitiveClosure(combined)
}

// FromRSM flattens r into a single BAA over the disjoint union of every
// box's states. States are renumbered into one dense global index space,
// ordered by variable (symbol.Less) and then by each box's own StateID
// order, so the result is deterministic across calls for the same RSM.
// Every box's own start and final states are flagged in the returned
// Start/Final vectors — not only the boxes reachable from r.Start — since
// a caller may need the flattened automaton to answer queries rooted at
// any variable, not just the grammar's start symbol.
// A DFA transition labeled with another variable V is carried over
// unchanged as a symbol.Variable-labeled edge in the flattened BAA; it is
// the caller's job (see package rsm's box-recursion note) to resolve such
// edges into the target variable's own box, typically by further closure
// over an added epsilon edge from the call site into V's start state.
func FromRSM(r *rsm.RSM) (*BAA, error) {
	vars := r.Variables()
	sort.Slice(vars, func(i, j int) bool { return symbol.Less(vars[i], vars[j]) })

	type globalState struct {
		variable symbol.Symbol
		local    automaton.StateID
	}
	var order []globalState
	base := make(map[symbol.Symbol]int, len(vars))
	for _, v := range vars {
		box := r.Boxes[v]
		base[v] = len(order)
		for _, s := range box.States() {
			order = append(order, globalState{variable: v, local: s})
		}
	}
	n := len(order)
	if n == 0 {
		return nil, ErrEmptyAutomaton
	}

	out := &BAA{NumStates: n, Adj: make(map[symbol.Symbol]*boolmatrix.Matrix)}
	start, err := boolmatrix.NewRowVector(n)
	if err != nil {
		return nil, err
	}
	final, err := boolmatrix.NewRowVector(n)
	if err != nil {
		return nil, err
	}

	for _, v := range vars {
		box := r.Boxes[v]
		offset := base[v]

		for _, s := range box.StartStates() {
			if err := start.Set(0, offset+int(s)); err != nil {
				return nil, err
			}
		}
		for _, s := range box.FinalStates() {
			if err := final.Set(0, offset+int(s)); err != nil {
				return nil, err
			}
		}

		var txErr error
		box.EachTransition(func(from automaton.StateID, sym symbol.Symbol, to automaton.StateID) {
			if txErr != nil {
				return
			}
			m, ok := out.Adj[sym]
			if !ok {
				var err error
				m, err = boolmatrix.NewZero(n, n)
				if err != nil {
					txErr = err
					return
				}
				out.Adj[sym] = m
			}
			if err := m.Set(offset+int(from), offset+int(to)); err != nil {
				txErr = err
			}
		})
		if txErr != nil {
			return nil, txErr
		}
	}

	out.Start = start
	out.Final = final
	return out, nil
}
