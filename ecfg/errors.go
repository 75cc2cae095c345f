package ecfg

import "errors"

var (
	// ErrMalformedLine indicates a grammar-text line did not match the
	// "Head -> regex" shape.
	ErrMalformedLine = errors.New("ecfg: malformed line")

	// ErrHeadNotVariable indicates a line's head token was not a variable.
	ErrHeadNotVariable = errors.New("ecfg: head is not a variable")

	// ErrDuplicateHead indicates a variable was given more than one
	// production body; §4.7 requires exactly one body per head.
	ErrDuplicateHead = errors.New("ecfg: variable already has a production")
)
