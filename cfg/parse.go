package cfg

import (
	"fmt"
	"strings"

	"github.com/Ixorlive/formal-lang-course/symbol"
)

// ClassifySymbol applies the textual convention used throughout this
// package's examples and §8's literal scenarios: a token whose first rune
// is an uppercase letter is a variable, everything else is a terminal.
func ClassifySymbol(tok string) symbol.Symbol {
	r := []rune(tok)[0]
	if r >= 'A' && r <= 'Z' {
		return symbol.NewVariable(tok)
	}
	return symbol.NewTerminal(tok)
}

func isEpsilonToken(s string) bool {
	switch strings.ToLower(s) {
	case "", "epsilon", "eps", "ε":
		return true
	default:
		return false
	}
}

// FromText parses the grammar-text format from §6: one head per line,
// "Head -> body (| body)*", bodies whitespace-separated token lists, the
// epsilon synonyms "epsilon"/"eps"/"ε" (or an empty alternative) denoting
// A → ε. Multiple lines may share the same head; each contributes its own
// alternative productions.
func FromText(text string, start symbol.Symbol) (*CFG, error) {
	var productions []Production
	lineNo := 0
	for _, rawLine := range strings.Split(text, "\n") {
		lineNo++
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: missing '->'", ErrMalformedProduction, lineNo)
		}
		headTok := strings.TrimSpace(parts[0])
		if headTok == "" || len(strings.Fields(headTok)) != 1 {
			return nil, fmt.Errorf("%w: line %d: head must be a single token", ErrMalformedProduction, lineNo)
		}
		head := ClassifySymbol(headTok)
		if !head.IsVariable() {
			return nil, fmt.Errorf("%w: line %d: %q", ErrHeadNotVariable, lineNo, headTok)
		}

		for _, alt := range strings.Split(parts[1], "|") {
			alt = strings.TrimSpace(alt)
			if isEpsilonToken(alt) {
				productions = append(productions, Production{Head: head})
				continue
			}
			fields := strings.Fields(alt)
			body := make([]symbol.Symbol, 0, len(fields))
			for _, f := range fields {
				body = append(body, ClassifySymbol(f))
			}
			productions = append(productions, Production{Head: head, Body: body})
		}
	}

	g := New(start, productions)
	hasStart := false
	for _, p := range g.Productions {
		if p.Head == start {
			hasStart = true
			break
		}
	}
	if !hasStart {
		return nil, ErrUndefinedStart
	}
	return g, nil
}
