package cfpq

import (
	"github.com/Ixorlive/formal-lang-course/cfg"
	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

type pair struct{ b, c symbol.Symbol }

// Hellings computes the saturated fact set R from §4.5: every (u, A, v)
// such that A ⇒* w for some word w that labels a path from u to v. g is
// normalized to weak CNF internally.
func Hellings(g *cfg.CFG, gr *graph.Graph) []Triple {
	weak := g.ToWeakCNF()

	epsNonterms := make(map[symbol.Symbol]struct{})
	termToNonterm := make(map[symbol.Symbol][]symbol.Symbol) // terminal -> heads
	binByPair := make(map[pair][]symbol.Symbol)               // (B,C) -> heads A

	for _, p := range weak.Productions {
		switch len(p.Body) {
		case 0:
			epsNonterms[p.Head] = struct{}{}
		case 1:
			termToNonterm[p.Body[0]] = append(termToNonterm[p.Body[0]], p.Head)
		case 2:
			key := pair{p.Body[0], p.Body[1]}
			binByPair[key] = append(binByPair[key], p.Head)
		}
	}

	type factKey struct {
		from, to graph.Node
		nonterm  symbol.Symbol
	}
	seen := make(map[factKey]struct{})
	bySrc := make(map[graph.Node]map[symbol.Symbol][]graph.Node) // i -> B -> []j
	byDst := make(map[graph.Node]map[symbol.Symbol][]graph.Node) // j -> B -> []i

	var worklist []Triple
	addFact := func(from graph.Node, nonterm symbol.Symbol, to graph.Node) {
		k := factKey{from, to, nonterm}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		if bySrc[from] == nil {
			bySrc[from] = make(map[symbol.Symbol][]graph.Node)
		}
		bySrc[from][nonterm] = append(bySrc[from][nonterm], to)
		if byDst[to] == nil {
			byDst[to] = make(map[symbol.Symbol][]graph.Node)
		}
		byDst[to][nonterm] = append(byDst[to][nonterm], from)
		worklist = append(worklist, Triple{From: from, Nonterm: nonterm, To: to})
	}

	for _, n := range gr.Nodes() {
		for a := range epsNonterms {
			addFact(n, a, n)
		}
	}
	for _, e := range gr.Edges() {
		for _, a := range termToNonterm[symbol.NewTerminal(e.Label)] {
			addFact(e.From, a, e.To)
		}
	}

	for head := 0; head < len(worklist); head++ {
		t := worklist[head]
		i, b, j := t.From, t.Nonterm, t.To

		// left combos: (h, C, i) in R, (C, B) -> A, produces (h, A, j)
		for c, froms := range byDst[i] {
			for _, a := range binByPair[pair{c, b}] {
				for _, h := range froms {
					addFact(h, a, j)
				}
			}
		}
		// right combos: (j, C, k) in R, (B, C) -> A, produces (i, A, k)
		for c, tos := range bySrc[j] {
			for _, a := range binByPair[pair{b, c}] {
				for _, k := range tos {
					addFact(i, a, k)
				}
			}
		}
	}

	return worklist
}
