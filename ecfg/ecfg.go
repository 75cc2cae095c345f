package ecfg

import (
	"fmt"
	"strings"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/cfg"
	"github.com/Ixorlive/formal-lang-course/rsm"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// ECFG is the extended CFG value from §3/§4.7: a start variable plus one
// regex body per variable, Bodies keyed by head.
type ECFG struct {
	Start  symbol.Symbol
	Bodies map[symbol.Symbol]string
}

// Variables returns every head variable, in no particular order.
func (e *ECFG) Variables() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(e.Bodies))
	for v := range e.Bodies {
		out = append(out, v)
	}
	return out
}

// FromText parses the §6 ECFG-text format: one "Head -> regex" line per
// variable. A variable given two bodies is rejected with
// ErrDuplicateHead, per §3's "each A ∈ V has exactly one production body"
// invariant.
func FromText(text string, start symbol.Symbol) (*ECFG, error) {
	bodies := make(map[symbol.Symbol]string)
	lineNo := 0
	for _, rawLine := range strings.Split(text, "\n") {
		lineNo++
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: missing '->'", ErrMalformedLine, lineNo)
		}
		headTok := strings.TrimSpace(parts[0])
		if headTok == "" || len(strings.Fields(headTok)) != 1 {
			return nil, fmt.Errorf("%w: line %d: head must be a single token", ErrMalformedLine, lineNo)
		}
		head := cfg.ClassifySymbol(headTok)
		if !head.IsVariable() {
			return nil, fmt.Errorf("%w: line %d: %q", ErrHeadNotVariable, lineNo, headTok)
		}
		if _, dup := bodies[head]; dup {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateHead, lineNo, headTok)
		}
		bodies[head] = strings.TrimSpace(parts[1])
	}
	return &ECFG{Start: start, Bodies: bodies}, nil
}

// FromCFG groups g's productions by head and OR-joins their bodies into
// one regex per variable, following ecfg.py's from_cfg: each production
// body becomes a parenthesized alternative, joined with " | "; an empty
// body (A → ε) contributes the literal "$" token. Bodies of length > 1
// are space-joined rather than concatenated: the original's naive
// character concatenation only worked because its example grammars used
// single-character symbols, which does not generalize to named
// multi-character symbols here.
func FromCFG(g *cfg.CFG) *ECFG {
	var heads []symbol.Symbol
	grouped := make(map[symbol.Symbol][]string)
	for _, p := range g.Productions {
		if _, ok := grouped[p.Head]; !ok {
			heads = append(heads, p.Head)
		}
		grouped[p.Head] = append(grouped[p.Head], bodyToRegexAtom(p.Body))
	}

	bodies := make(map[symbol.Symbol]string, len(heads))
	for _, h := range heads {
		alts := grouped[h]
		parts := make([]string, len(alts))
		for i, a := range alts {
			parts[i] = "(" + a + ")"
		}
		bodies[h] = strings.Join(parts, " | ")
	}
	return &ECFG{Start: g.Start, Bodies: bodies}
}

func bodyToRegexAtom(body []symbol.Symbol) string {
	if len(body) == 0 {
		return "$"
	}
	toks := make([]string, len(body))
	for i, s := range body {
		toks[i] = s.Name()
	}
	return strings.Join(toks, " ")
}

// ToRSM compiles each variable's regex body to a minimized DFA and
// bundles the result as an rsm.RSM, per §4.7's to_rfa. A regex token
// resolves to a Variable symbol iff it names one of e's own heads
// (a recursive call per §3); every other token is a Terminal.
func (e *ECFG) ToRSM() (*rsm.RSM, error) {
	isVariable := make(map[string]struct{}, len(e.Bodies))
	for v := range e.Bodies {
		isVariable[v.Name()] = struct{}{}
	}
	resolve := func(name string) symbol.Symbol {
		if _, ok := isVariable[name]; ok {
			return symbol.NewVariable(name)
		}
		return symbol.NewTerminal(name)
	}

	boxes := make(map[symbol.Symbol]*automaton.FA, len(e.Bodies))
	for head, body := range e.Bodies {
		dfa, err := automaton.MinimalDFAFromRegex(body, resolve)
		if err != nil {
			return nil, fmt.Errorf("ecfg: box %s: %w", head, err)
		}
		boxes[head] = dfa
	}
	return rsm.New(e.Start, boxes), nil
}
