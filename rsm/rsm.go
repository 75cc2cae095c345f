package rsm

import (
	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/symbol"
)

// RSM is a recursive state machine: a start variable plus one minimized
// DFA ("box") per variable. Boxes is keyed by symbol.Variable symbols; a
// box's DFA may carry transitions labeled with other variables, which are
// recursive calls rather than ordinary terminal edges.
type RSM struct {
	Start symbol.Symbol
	Boxes map[symbol.Symbol]*automaton.FA
}

// New returns an RSM with the given start variable and boxes map (not
// copied; callers should treat the RSM as immutable once constructed).
func New(start symbol.Symbol, boxes map[symbol.Symbol]*automaton.FA) *RSM {
	return &RSM{Start: start, Boxes: boxes}
}

// Minimize returns a new RSM with every box independently minimized.
// Complexity: Σ over boxes of that box's Minimize cost.
func (r *RSM) Minimize() (*RSM, error) {
	out := make(map[symbol.Symbol]*automaton.FA, len(r.Boxes))
	for v, box := range r.Boxes {
		min, err := box.Minimize()
		if err != nil {
			return nil, err
		}
		out[v] = min
	}
	return New(r.Start, out), nil
}

// Variables returns the RSM's variables (box keys).
func (r *RSM) Variables() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(r.Boxes))
	for v := range r.Boxes {
		out = append(out, v)
	}
	return out
}
