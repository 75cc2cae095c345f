package query

import (
	"errors"
	"fmt"

	"github.com/Ixorlive/formal-lang-course/cfpq"
)

// The four §7 error kinds. Every error this package returns satisfies
// errors.Is against exactly one of these, via the classify* helpers below
// wrapping the underlying engine's sentinel with the matching kind.
var (
	ErrMalformedGrammar = errors.New("query: malformed grammar")
	ErrMalformedGraph   = errors.New("query: malformed graph")
	ErrTypeMismatch     = errors.New("query: type mismatch at boundary")
	ErrUnknownAlgorithm = errors.New("query: unknown algorithm selector")
)

// classifyGrammarErr wraps a cfg/ecfg parse error with ErrMalformedGrammar
// so callers can errors.Is(err, ErrMalformedGrammar) without knowing which
// concrete grammar package produced it.
func classifyGrammarErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformedGrammar, err)
}

// classifyGraphErr wraps a graph ingestion/conversion error with
// ErrMalformedGraph.
func classifyGraphErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformedGraph, err)
}

// classifyAlgoErr wraps cfpq.ErrUnknownAlgorithm with this package's own
// ErrUnknownAlgorithm sentinel, so callers depend on one stable error
// rather than reaching into cfpq directly. Any other engine error is
// classified as ErrMalformedGraph, as MatrixCFPQ does.
func classifyAlgoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cfpq.ErrUnknownAlgorithm) {
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	}
	return classifyGraphErr(err)
}
