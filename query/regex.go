package query

import (
	"errors"

	"github.com/projectdiscovery/gologger"

	"github.com/Ixorlive/formal-lang-course/automaton"
	"github.com/Ixorlive/formal-lang-course/graph"
	"github.com/Ixorlive/formal-lang-course/rpq"
)

// classifyRegexQueryErr tells a malformed-regex failure (§7 "malformed
// grammar") apart from a graph-shaped one (unknown start/final node,
// empty graph): rpq's engines can fail either way, so this package must
// inspect the underlying sentinel rather than assume one kind.
func classifyRegexQueryErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, automaton.ErrEmptyRegex) || errors.Is(err, automaton.ErrRegexSyntax) {
		return classifyGrammarErr(err)
	}
	return classifyGraphErr(err)
}

// RegularQuery answers §6's `regular_query(regex, graph, starts?, finals?)`.
func RegularQuery(pattern string, gr *graph.Graph, starts, finals []graph.Node) ([]rpq.Pair, error) {
	gologger.Debug().Msgf("query: regular_query pattern=%q starts=%d finals=%d", pattern, len(starts), len(finals))
	pairs, err := rpq.RegularQuery(pattern, gr, starts, finals)
	if err != nil {
		gologger.Error().Msgf("query: regular_query failed: %v", err)
		return nil, classifyRegexQueryErr(err)
	}
	gologger.Info().Msgf("query: regular_query matched %d pair(s)", len(pairs))
	return pairs, nil
}

// FindAccessible answers §6's
// `find_accessible(regex, graph, starts?, finals?, for_each?)`.
func FindAccessible(pattern string, gr *graph.Graph, starts, finals []graph.Node, forEach bool) (*rpq.AccessibleResult, error) {
	gologger.Debug().Msgf("query: find_accessible pattern=%q for_each=%v", pattern, forEach)
	res, err := rpq.FindAccessible(pattern, gr, starts, finals, forEach)
	if err != nil {
		gologger.Error().Msgf("query: find_accessible failed: %v", err)
		return nil, classifyRegexQueryErr(err)
	}
	return res, nil
}
