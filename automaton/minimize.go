package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Ixorlive/formal-lang-course/symbol"
)

// RemoveUnreachable returns a copy of f containing only the states
// reachable from some start state, reindexed densely from 0. f must not
// have ε-transitions pending closure; call Determinize first if it does.
// Complexity: O(|Q| + |δ|).
func (f *FA) RemoveUnreachable() *FA {
	f.mu.RLock()
	reachable := make(map[StateID]struct{})
	var stack []StateID
	for s := range f.start {
		reachable[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, targets := range f.delta[s] {
			for t := range targets {
				if _, seen := reachable[t]; !seen {
					reachable[t] = struct{}{}
					stack = append(stack, t)
				}
			}
		}
	}
	f.mu.RUnlock()

	return f.project(reachable)
}

// project builds a new FA containing exactly the states in keep,
// reindexed densely in ascending original order, with δ/start/final
// restricted accordingly.
func (f *FA) project(keep map[StateID]struct{}) *FA {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ordered := make([]StateID, 0, len(keep))
	for s := range keep {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	remap := make(map[StateID]StateID, len(ordered))
	out := New(f.kind)
	for _, old := range ordered {
		remap[old] = out.AddState()
	}
	for _, old := range ordered {
		for sym, targets := range f.delta[old] {
			for t := range targets {
				if newT, ok := remap[t]; ok {
					_ = out.AddTransition(remap[old], sym, newT)
				}
			}
		}
	}
	for s := range f.start {
		if newS, ok := remap[s]; ok {
			_ = out.SetStart(newS)
		}
	}
	for s := range f.final {
		if newS, ok := remap[s]; ok {
			_ = out.SetFinal(newS)
		}
	}
	return out
}

// Minimize reduces a DFA to its canonical minimal form via partition
// refinement (Moore's algorithm): states start split into {final,
// non-final}; a block is further split whenever two of its states
// disagree, for some label, on which block their target falls into
// (including "no transition" as its own class). Refinement repeats to a
// fixpoint, then one representative state is emitted per surviving block.
//
// Minimize first removes unreachable states, so the result also satisfies
// the "no unreachable states" half of the automaton invariant in §3.
// Returns ErrNotDeterministic if f is not a DFA (ε-edges present, or more
// than one start state, or nondeterministic transitions).
// Complexity: O(|Q|^2 * |Σ|) worst case.
func (f *FA) Minimize() (*FA, error) {
	if err := f.requireDFA(); err != nil {
		return nil, err
	}

	reached := f.RemoveUnreachable()
	labels := reached.Labels()
	n := reached.NumStates()
	if n == 0 {
		return reached, nil
	}

	block := make([]int, n)
	for i := 0; i < n; i++ {
		if reached.IsFinal(StateID(i)) {
			block[i] = 1
		}
	}

	for {
		signatures := make([]string, n)
		for i := 0; i < n; i++ {
			var sb strings.Builder
			for _, lbl := range labels {
				targets := reached.Targets(StateID(i), lbl)
				tb := -1
				for t := range targets {
					tb = block[t]
				}
				sb.WriteString(strconv.Itoa(tb))
				sb.WriteByte('|')
			}
			signatures[i] = sb.String()
		}

		type key struct {
			oldBlock int
			sig      string
		}
		seen := make(map[key]int)
		newBlock := make([]int, n)
		next := 0
		for i := 0; i < n; i++ {
			k := key{block[i], signatures[i]}
			id, ok := seen[k]
			if !ok {
				id = next
				next++
				seen[k] = id
			}
			newBlock[i] = id
		}

		changed := next != maxBlock(block)+1
		block = newBlock
		if !changed {
			break
		}
	}

	numBlocks := maxBlock(block) + 1
	out := New(DFA)
	blockState := make([]StateID, numBlocks)
	for b := 0; b < numBlocks; b++ {
		blockState[b] = out.AddState()
	}
	repFor := make([]StateID, numBlocks)
	found := make([]bool, numBlocks)
	for i := 0; i < n; i++ {
		b := block[i]
		if !found[b] {
			repFor[b] = StateID(i)
			found[b] = true
		}
	}
	for b := 0; b < numBlocks; b++ {
		rep := repFor[b]
		if reached.IsFinal(rep) {
			_ = out.SetFinal(blockState[b])
		}
		for _, lbl := range labels {
			targets := reached.Targets(rep, lbl)
			for t := range targets {
				_ = out.AddTransition(blockState[b], lbl, blockState[block[t]])
			}
		}
	}
	startBlock := block[reached.StartStates()[0]]
	if err := out.SetStart(blockState[startBlock]); err != nil {
		return nil, err
	}
	return out, nil
}

func maxBlock(block []int) int {
	m := 0
	for _, b := range block {
		if b > m {
			m = b
		}
	}
	return m
}

func (f *FA) requireDFA() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.kind == EpsilonNFA {
		for _, bySym := range f.delta {
			if _, ok := bySym[symbol.Eps]; ok {
				return ErrNotDeterministic
			}
		}
	}
	if len(f.start) > 1 {
		return ErrNotDeterministic
	}
	if len(f.start) == 0 {
		return ErrNotDeterministic
	}
	for _, bySym := range f.delta {
		for _, targets := range bySym {
			if len(targets) > 1 {
				return ErrNotDeterministic
			}
		}
	}
	return nil
}
