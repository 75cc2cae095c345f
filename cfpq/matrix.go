package cfpq

import (
	"sort"

	"github.com/Ixorlive/formal-lang-course/boolmatrix"
	"github.com/Ixorlive/formal-lang-course/cfg"
	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// Matrix computes the same saturated fact set as Hellings via the §4.6
// iterative Boolean-matrix fixpoint: one n×n matrix T[A] per nonterminal,
// seeded from ε/terminal productions and grown by T[A] |= T[B]·T[C] for
// every binary production A → B C until a sweep makes no change.
func Matrix(g *cfg.CFG, gr *graph.Graph) ([]Triple, error) {
	weak := g.ToWeakCNF()

	nodes := gr.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	n := len(nodes)
	idx := make(map[graph.Node]int, n)
	for i, nd := range nodes {
		idx[nd] = i
	}

	T := make(map[symbol.Symbol]*boolmatrix.Matrix)
	get := func(v symbol.Symbol) (*boolmatrix.Matrix, error) {
		if m, ok := T[v]; ok {
			return m, nil
		}
		m, err := boolmatrix.NewZero(n, n)
		if err != nil {
			return nil, err
		}
		T[v] = m
		return m, nil
	}

	type binProd struct{ head, b, c symbol.Symbol }
	var binProds []binProd

	for _, v := range weak.Variables() {
		if _, err := get(v); err != nil {
			return nil, err
		}
	}

	for _, p := range weak.Productions {
		m, err := get(p.Head)
		if err != nil {
			return nil, err
		}
		switch len(p.Body) {
		case 0:
			for i := 0; i < n; i++ {
				if err := m.Set(i, i); err != nil {
					return nil, err
				}
			}
		case 1:
			terminal := p.Body[0]
			for _, e := range gr.Edges() {
				if symbol.NewTerminal(e.Label) != terminal {
					continue
				}
				if err := m.Set(idx[e.From], idx[e.To]); err != nil {
					return nil, err
				}
			}
		case 2:
			binProds = append(binProds, binProd{p.Head, p.Body[0], p.Body[1]})
		}
	}

	changed := true
	for changed {
		changed = false
		for _, bp := range binProds {
			a, err := get(bp.head)
			if err != nil {
				return nil, err
			}
			b, err := get(bp.b)
			if err != nil {
				return nil, err
			}
			c, err := get(bp.c)
			if err != nil {
				return nil, err
			}
			product, err := boolmatrix.Mul(b, c)
			if err != nil {
				return nil, err
			}
			grew, err := a.OrInPlace(product)
			if err != nil {
				return nil, err
			}
			if grew {
				changed = true
			}
		}
	}

	var out []Triple
	for v, m := range T {
		for _, rc := range m.Nonzeros() {
			out = append(out, Triple{From: nodes[rc[0]], Nonterm: v, To: nodes[rc[1]]})
		}
	}
	return out, nil
}
