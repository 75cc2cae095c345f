package cfg

import (
	"fmt"

	"github.com/Ixorlive/formal-lang-course/symbol"
)

// ToWeakCNF runs the §4.4 normalization pipeline: eliminate unit
// productions, remove useless symbols, then wrap stray terminals and
// binarize long bodies. Every production in the result has body length
// 0 (A → ε), 1 (A → a), or 2 (A → B C).
func (g *CFG) ToWeakCNF() *CFG {
	step1 := g.eliminateUnitProductions()
	step2 := step1.removeUselessSymbols()
	return step2.decompose()
}

// eliminateUnitProductions replaces every chain of unit productions
// A → B (B a lone variable) by copying B's non-unit productions onto A,
// then drops the unit productions themselves. Grounded on
// pyformlang's eliminate_unit_productions, reimplemented over
// symbol.Symbol productions directly (closure over the unit-pair
// relation, then substitution).
func (g *CFG) eliminateUnitProductions() *CFG {
	isUnit := func(p Production) (symbol.Symbol, bool) {
		if len(p.Body) == 1 && p.Body[0].IsVariable() {
			return p.Body[0], true
		}
		return symbol.Symbol{}, false
	}

	unitPairs := make(map[symbol.Symbol]map[symbol.Symbol]struct{})
	for _, v := range g.Variables() {
		unitPairs[v] = map[symbol.Symbol]struct{}{v: {}}
	}
	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			target, ok := isUnit(p)
			if !ok {
				continue
			}
			for reached := range unitPairs[target] {
				if _, already := unitPairs[p.Head][reached]; !already {
					unitPairs[p.Head][reached] = struct{}{}
					changed = true
				}
			}
		}
	}

	var out []Production
	for head, reachable := range unitPairs {
		for _, p := range g.Productions {
			if _, ok := isUnit(p); ok {
				continue
			}
			if _, ok := reachable[p.Head]; ok {
				out = append(out, Production{Head: head, Body: p.Body})
			}
		}
	}
	return New(g.Start, out)
}

// removeUselessSymbols drops productions mentioning a non-generating
// variable (one that can never derive a string of terminals) and then
// drops whatever is left unreachable from Start, mirroring pyformlang's
// two-pass remove_useless_symbols.
func (g *CFG) removeUselessSymbols() *CFG {
	generating := make(map[symbol.Symbol]struct{})
	changed := true
	bodyGenerates := func(body []symbol.Symbol) bool {
		for _, s := range body {
			if s.IsVariable() {
				if _, ok := generating[s]; !ok {
					return false
				}
			}
		}
		return true
	}
	for changed {
		changed = false
		for _, p := range g.Productions {
			if _, ok := generating[p.Head]; ok {
				continue
			}
			if bodyGenerates(p.Body) {
				generating[p.Head] = struct{}{}
				changed = true
			}
		}
	}

	var genProds []Production
	for _, p := range g.Productions {
		if _, ok := generating[p.Head]; !ok {
			continue
		}
		if bodyGenerates(p.Body) {
			genProds = append(genProds, p)
		}
	}

	reachable := map[symbol.Symbol]struct{}{g.Start: {}}
	changed = true
	for changed {
		changed = false
		for _, p := range genProds {
			if _, ok := reachable[p.Head]; !ok {
				continue
			}
			for _, s := range p.Body {
				if !s.IsVariable() {
					continue
				}
				if _, ok := reachable[s]; !ok {
					reachable[s] = struct{}{}
					changed = true
				}
			}
		}
	}

	var out []Production
	for _, p := range genProds {
		if _, ok := reachable[p.Head]; ok {
			out = append(out, p)
		}
	}
	return New(g.Start, out)
}

// freshVariableSource hands out variable names guaranteed not to collide
// with any name already in use, prefixed per the caller's convention.
type freshVariableSource struct {
	used    map[string]struct{}
	counter int
}

func newFreshVariableSource(g *CFG) *freshVariableSource {
	used := make(map[string]struct{})
	for _, v := range g.Variables() {
		used[v.Name()] = struct{}{}
	}
	return &freshVariableSource{used: used}
}

func (f *freshVariableSource) next(prefix string) symbol.Symbol {
	for {
		f.counter++
		name := fmt.Sprintf("%s%d", prefix, f.counter)
		if _, taken := f.used[name]; !taken {
			f.used[name] = struct{}{}
			return symbol.NewVariable(name)
		}
	}
}

// decompose wraps stray terminals in mixed bodies with fresh
// terminal-carrying variables, then binarizes bodies of length >= 3,
// per §4.4 steps 3-4.
func (g *CFG) decompose() *CFG {
	fresh := newFreshVariableSource(g)
	terminalVars := make(map[symbol.Symbol]symbol.Symbol) // terminal -> T_a
	wrap := func(s symbol.Symbol) symbol.Symbol {
		if s.IsVariable() {
			return s
		}
		if v, ok := terminalVars[s]; ok {
			return v
		}
		v := fresh.next("T_" + s.Name() + "_")
		terminalVars[s] = v
		return v
	}

	var out []Production
	for _, p := range g.Productions {
		switch len(p.Body) {
		case 0, 1:
			out = append(out, p)
			continue
		}

		wrapped := make([]symbol.Symbol, len(p.Body))
		for i, s := range p.Body {
			wrapped[i] = wrap(s)
		}

		if len(wrapped) == 2 {
			out = append(out, Production{Head: p.Head, Body: wrapped})
			continue
		}

		head := p.Head
		for i := 0; i < len(wrapped)-2; i++ {
			y := fresh.next("Y_")
			out = append(out, Production{Head: head, Body: []symbol.Symbol{wrapped[i], y}})
			head = y
		}
		out = append(out, Production{Head: head, Body: wrapped[len(wrapped)-2:]})
	}
	for a, v := range terminalVars {
		out = append(out, Production{Head: v, Body: []symbol.Symbol{a}})
	}
	return New(g.Start, out)
}
