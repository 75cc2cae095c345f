package query

import "github.com/Ixorlive/formal-lang-course/symbol"

// Option customizes grammar parsing for the CFPQ-facing entry points
// (Hellings, MatrixCFPQ, ReachabilityWithNonterminal). Option constructors
// validate and panic on meaningless inputs; the algorithms themselves
// never panic.
type Option func(*config)

type config struct {
	start symbol.Symbol
}

func newConfig(opts ...Option) *config {
	c := &config{start: symbol.NewVariable("S")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithStartSymbol overrides the grammar's start variable (default "S",
// per §6's "start symbol configurable, default S"). Panics if name is
// empty.
func WithStartSymbol(name string) Option {
	if name == "" {
		panic("query: WithStartSymbol(\"\")")
	}
	return func(c *config) {
		c.start = symbol.NewVariable(name)
	}
}
