package automaton

import (
	"sort"
	"sync"

	"github.com/Ixorlive/formal-lang-course/symbol"
)

// Kind tags how strict an FA's transition relation is. The zero value,
// EpsilonNFA, is the least constrained.
type Kind uint8

const (
	// EpsilonNFA allows ε-transitions and multiple outgoing edges per
	// symbol, and any number of start states.
	EpsilonNFA Kind = iota
	// NFA forbids ε-transitions but still allows nondeterminism and
	// multiple start states.
	NFA
	// DFA requires a single start state, no ε-transitions, and at most
	// one outgoing transition per (state, symbol) pair. DFA-ness is
	// enforced on AddTransition/SetStart, not re-checked lazily.
	DFA
)

// StateID identifies a state within the FA that created it. IDs are dense
// integers starting at 0 and are meaningless outside their owning FA.
type StateID int

// FA is a finite automaton (Q, Σ, δ, S, F). Use New to construct one, then
// AddState/AddTransition/SetStart/SetFinal to populate it; once handed to
// another package (e.g. baa.Build), treat it as immutable.
type FA struct {
	mu sync.RWMutex

	kind       Kind
	numStates  int
	delta      map[StateID]map[symbol.Symbol]map[StateID]struct{}
	start      map[StateID]struct{}
	final      map[StateID]struct{}
}

// New creates an empty automaton of the given Kind with zero states.
func New(kind Kind) *FA {
	return &FA{
		kind:  kind,
		delta: make(map[StateID]map[symbol.Symbol]map[StateID]struct{}),
		start: make(map[StateID]struct{}),
		final: make(map[StateID]struct{}),
	}
}

// Kind reports the automaton's declared strictness.
func (f *FA) Kind() Kind {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.kind
}

// AddState allocates and returns a fresh StateID.
// Complexity: O(1) amortized.
func (f *FA) AddState() StateID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := StateID(f.numStates)
	f.numStates++
	f.delta[id] = make(map[symbol.Symbol]map[StateID]struct{})
	return id
}

// NumStates returns |Q|.
func (f *FA) NumStates() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.numStates
}

func (f *FA) hasState(s StateID) bool {
	return s >= 0 && int(s) < f.numStates
}

// AddTransition adds (from, sym, to) to δ. Returns ErrUnknownState if
// either endpoint was not produced by AddState on this FA, and
// ErrEpsilonNotAllowed if sym is epsilon but Kind() != EpsilonNFA.
// Complexity: O(1) amortized.
func (f *FA) AddTransition(from StateID, sym symbol.Symbol, to StateID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.hasState(from) || !f.hasState(to) {
		return ErrUnknownState
	}
	if sym.IsEpsilon() && f.kind != EpsilonNFA {
		return ErrEpsilonNotAllowed
	}
	if f.kind == DFA {
		if targets, ok := f.delta[from][sym]; ok && len(targets) > 0 {
			for existing := range targets {
				if existing != to {
					return ErrNotDeterministic
				}
			}
		}
	}

	bySym := f.delta[from]
	if bySym[sym] == nil {
		bySym[sym] = make(map[StateID]struct{})
	}
	bySym[sym][to] = struct{}{}
	return nil
}

// SetStart marks s as an initial state. DFA kind rejects a second start
// state with ErrNotDeterministic.
func (f *FA) SetStart(s StateID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasState(s) {
		return ErrUnknownState
	}
	if f.kind == DFA && len(f.start) > 0 {
		if _, already := f.start[s]; !already {
			return ErrNotDeterministic
		}
	}
	f.start[s] = struct{}{}
	return nil
}

// SetFinal marks s as an accepting state.
func (f *FA) SetFinal(s StateID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasState(s) {
		return ErrUnknownState
	}
	f.final[s] = struct{}{}
	return nil
}

// States returns every StateID in ascending order.
func (f *FA) States() []StateID {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]StateID, f.numStates)
	for i := range out {
		out[i] = StateID(i)
	}
	return out
}

// StartStates returns the initial state set, sorted.
func (f *FA) StartStates() []StateID { return f.sortedSet(f.start) }

// FinalStates returns the accepting state set, sorted.
func (f *FA) FinalStates() []StateID { return f.sortedSet(f.final) }

func (f *FA) sortedSet(set map[StateID]struct{}) []StateID {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]StateID, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsStart reports whether s is an initial state.
func (f *FA) IsStart(s StateID) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.start[s]
	return ok
}

// IsFinal reports whether s is an accepting state.
func (f *FA) IsFinal(s StateID) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.final[s]
	return ok
}

// Labels returns the set of symbols occurring anywhere in δ, sorted.
func (f *FA) Labels() []symbol.Symbol {
	f.mu.RLock()
	defer f.mu.RUnlock()
	seen := make(map[symbol.Symbol]struct{})
	for _, bySym := range f.delta {
		for s := range bySym {
			seen[s] = struct{}{}
		}
	}
	out := make([]symbol.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return symbol.Less(out[i], out[j]) })
	return out
}

// Targets returns the set of states reachable from `from` on `sym`
// (empty, non-nil, if there is no such transition).
func (f *FA) Targets(from StateID, sym symbol.Symbol) map[StateID]struct{} {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[StateID]struct{})
	for s := range f.delta[from][sym] {
		out[s] = struct{}{}
	}
	return out
}

// EachTransition calls fn(from, sym, to) once per entry of δ. fn must not
// mutate f.
func (f *FA) EachTransition(fn func(from StateID, sym symbol.Symbol, to StateID)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for from, bySym := range f.delta {
		for sym, targets := range bySym {
			for to := range targets {
				fn(from, sym, to)
			}
		}
	}
}
