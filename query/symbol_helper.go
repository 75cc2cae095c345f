package query

import "github.com/Ixorlive/formal-lang-course/symbol"

// symbolFromName resolves a bare nonterminal name (e.g. "S") to the
// Variable-kind Symbol the cfpq engines key their triples on.
func symbolFromName(name string) symbol.Symbol {
	return symbol.NewVariable(name)
}
