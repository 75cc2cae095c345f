package symbol

import "fmt"

// Kind tags the sub-kind of a Symbol: terminal, variable, or the
// distinguished empty-string marker.
//
// Kind + Name together form the equality/hash key of a Symbol: a terminal
// named "S" and a variable named "S" are distinct values.
type Kind uint8

const (
	// Terminal marks a symbol that occurs on graph edges and as a CFG
	// terminal (the "T" in (V, T, P, S0)).
	Terminal Kind = iota
	// Variable marks a CFG/ECFG nonterminal.
	Variable
	// Epsilon marks the distinguished empty-string symbol. Its Name is
	// always ignored; use Eps to construct it.
	Epsilon
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Variable:
		return "variable"
	case Epsilon:
		return "epsilon"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Symbol is an opaque, comparable alphabet element. The zero value is the
// terminal with empty Name; use the constructors below rather than struct
// literals to keep Epsilon canonical.
type Symbol struct {
	kind Kind
	name string
}

// NewTerminal returns the terminal symbol named name.
func NewTerminal(name string) Symbol { return Symbol{kind: Terminal, name: name} }

// NewVariable returns the variable symbol named name.
func NewVariable(name string) Symbol { return Symbol{kind: Variable, name: name} }

// Eps is the single canonical epsilon symbol. All epsilon-tagged Symbol
// values compare equal regardless of how they were produced.
var Eps = Symbol{kind: Epsilon}

// Kind reports whether s is a Terminal, Variable, or Epsilon.
func (s Symbol) Kind() Kind { return s.kind }

// Name returns the symbol's payload. Epsilon's Name is always "".
func (s Symbol) Name() string {
	if s.kind == Epsilon {
		return ""
	}
	return s.name
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool { return s.kind == Terminal }

// IsVariable reports whether s is a variable symbol.
func (s Symbol) IsVariable() bool { return s.kind == Variable }

// IsEpsilon reports whether s is the epsilon symbol.
func (s Symbol) IsEpsilon() bool { return s.kind == Epsilon }

// String renders the symbol for diagnostics and DOT/CFG text round-tripping.
// Epsilon renders as "ε"; callers that need the ASCII grammar convention use
// the literal "epsilon"/"$" tokens documented at the text-ingestion boundary
// instead of this method.
func (s Symbol) String() string {
	if s.kind == Epsilon {
		return "ε"
	}
	return s.name
}

// Less provides a total order over symbols so callers can produce
// deterministic, sorted output (e.g. when rendering result sets). Terminals
// sort before variables, which sort before epsilon; within a Kind, symbols
// sort by Name.
func Less(a, b Symbol) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.name < b.name
}
