package cfpq

import "errors"

// ErrUnknownAlgorithm indicates an algo selector outside {"hellings",
// "matrix"} was requested (§7's "Unknown algorithm selector" error kind).
var ErrUnknownAlgorithm = errors.New("cfpq: unknown algorithm selector")
