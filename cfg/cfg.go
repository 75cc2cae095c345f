package cfg

import "github.com/Ixorlive/formal-lang-course/symbol"

// Production is one A → α rule. An empty Body denotes A → ε.
type Production struct {
	Head symbol.Symbol
	Body []symbol.Symbol
}

// IsEpsilon reports whether this production's body is empty.
func (p Production) IsEpsilon() bool { return len(p.Body) == 0 }

// CFG is (V, T, P, S0) (§3): a context-free grammar over symbol.Symbol
// values. Variables and terminals are not stored separately; they are
// derived on demand by scanning Productions, since the set of symbols in
// play changes as normalization introduces fresh variables.
type CFG struct {
	Start       symbol.Symbol
	Productions []Production
}

// New returns a CFG with the given start symbol and productions.
func New(start symbol.Symbol, productions []Production) *CFG {
	return &CFG{Start: start, Productions: productions}
}

// Variables returns every variable occurring as a production head or
// inside a production body.
func (g *CFG) Variables() []symbol.Symbol {
	seen := make(map[symbol.Symbol]struct{})
	var out []symbol.Symbol
	add := func(s symbol.Symbol) {
		if !s.IsVariable() {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, p := range g.Productions {
		add(p.Head)
		for _, s := range p.Body {
			add(s)
		}
	}
	return out
}

// Terminals returns every terminal occurring in some production body.
func (g *CFG) Terminals() []symbol.Symbol {
	seen := make(map[symbol.Symbol]struct{})
	var out []symbol.Symbol
	for _, p := range g.Productions {
		for _, s := range p.Body {
			if !s.IsTerminal() {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// ProductionsFor returns every production headed by head.
func (g *CFG) ProductionsFor(head symbol.Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Head == head {
			out = append(out, p)
		}
	}
	return out
}
