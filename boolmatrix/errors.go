package boolmatrix

import "errors"

// Sentinel errors for boolmatrix operations. Callers should branch with
// errors.Is; messages are not part of the API contract.
var (
	// ErrInvalidShape indicates a non-positive row or column count was
	// requested for a new matrix.
	ErrInvalidShape = errors.New("boolmatrix: shape must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index fell outside
	// the matrix's declared shape.
	ErrIndexOutOfBounds = errors.New("boolmatrix: index out of bounds")

	// ErrDimensionMismatch indicates two matrices passed to a binary
	// operation (Or, Mul) have incompatible shapes.
	ErrDimensionMismatch = errors.New("boolmatrix: dimension mismatch")
)
