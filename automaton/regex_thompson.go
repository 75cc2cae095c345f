package automaton

import "github.com/Ixorlive/formal-lang-course/symbol"

// SymbolResolver maps a raw regex token name to the Symbol it denotes.
// RPQ regexes resolve every token as a terminal; ECFG box regexes resolve
// a token as a Variable when it names one of the grammar's nonterminals
// and as a Terminal otherwise.
type SymbolResolver func(name string) symbol.Symbol

// TerminalResolver is the SymbolResolver used by plain RPQ regexes: every
// token is a terminal label.
func TerminalResolver(name string) symbol.Symbol { return symbol.NewTerminal(name) }

// CompileRegex parses pattern and compiles it to an ε-NFA via Thompson
// construction, resolving bare tokens through resolve.
// Complexity: O(len(pattern)) states and transitions.
func CompileRegex(pattern string, resolve SymbolResolver) (*FA, error) {
	ast, err := parseRegex(pattern)
	if err != nil {
		return nil, err
	}
	fa := New(EpsilonNFA)
	start, final := thompsonBuild(fa, ast, resolve)
	if err := fa.SetStart(start); err != nil {
		return nil, err
	}
	if err := fa.SetFinal(final); err != nil {
		return nil, err
	}
	return fa, nil
}

// thompsonBuild recursively lays out states/transitions for node inside
// fa, returning a single entry and single exit state for the fragment
// (the classical Thompson invariant: every fragment has exactly one
// start and one accept state, wired together by its parent).
func thompsonBuild(fa *FA, node *regexNode, resolve SymbolResolver) (start, final StateID) {
	switch node.kind {
	case regexEpsilon:
		s := fa.AddState()
		f := fa.AddState()
		_ = fa.AddTransition(s, symbol.Eps, f)
		return s, f

	case regexSymbol:
		s := fa.AddState()
		f := fa.AddState()
		_ = fa.AddTransition(s, resolve(node.symbol), f)
		return s, f

	case regexConcat:
		var prevFinal StateID
		var overallStart StateID
		for i, child := range node.children {
			cs, cf := thompsonBuild(fa, child, resolve)
			if i == 0 {
				overallStart = cs
			} else {
				_ = fa.AddTransition(prevFinal, symbol.Eps, cs)
			}
			prevFinal = cf
		}
		return overallStart, prevFinal

	case regexUnion:
		s := fa.AddState()
		f := fa.AddState()
		for _, child := range node.children {
			cs, cf := thompsonBuild(fa, child, resolve)
			_ = fa.AddTransition(s, symbol.Eps, cs)
			_ = fa.AddTransition(cf, symbol.Eps, f)
		}
		return s, f

	case regexStar:
		s := fa.AddState()
		f := fa.AddState()
		cs, cf := thompsonBuild(fa, node.children[0], resolve)
		_ = fa.AddTransition(s, symbol.Eps, cs)
		_ = fa.AddTransition(cf, symbol.Eps, f)
		_ = fa.AddTransition(cf, symbol.Eps, cs)
		_ = fa.AddTransition(s, symbol.Eps, f)
		return s, f

	case regexPlus:
		cs, cf := thompsonBuild(fa, node.children[0], resolve)
		_ = fa.AddTransition(cf, symbol.Eps, cs)
		return cs, cf

	case regexOptional:
		s := fa.AddState()
		f := fa.AddState()
		cs, cf := thompsonBuild(fa, node.children[0], resolve)
		_ = fa.AddTransition(s, symbol.Eps, cs)
		_ = fa.AddTransition(cf, symbol.Eps, f)
		_ = fa.AddTransition(s, symbol.Eps, f)
		return s, f

	default:
		s := fa.AddState()
		return s, s
	}
}

// MinimalDFAFromRegex compiles pattern, determinizes, and minimizes it in
// one call — the composition §4.3.1 step 1 names as "regex → ε-NFA →
// minimize".
func MinimalDFAFromRegex(pattern string, resolve SymbolResolver) (*FA, error) {
	enfa, err := CompileRegex(pattern, resolve)
	if err != nil {
		return nil, err
	}
	dfa, err := enfa.Determinize()
	if err != nil {
		return nil, err
	}
	return dfa.Minimize()
}
