package cfg

import "errors"

var (
	// ErrMalformedProduction indicates a grammar-text line did not match
	// the "Head -> body (| body)*" shape.
	ErrMalformedProduction = errors.New("cfg: malformed production")

	// ErrHeadNotVariable indicates a production's head token was not a
	// valid variable name.
	ErrHeadNotVariable = errors.New("cfg: production head is not a variable")

	// ErrUndefinedStart indicates the configured start symbol is not the
	// head of any production.
	ErrUndefinedStart = errors.New("cfg: start symbol has no production")

	// ErrDuplicateHead indicates an ECFG body tried to give a variable
	// more than one production (ECFG requires exactly one body per head).
	ErrDuplicateHead = errors.New("cfg: variable already has a production")
)
