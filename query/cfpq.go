package query

import (
	"github.com/projectdiscovery/gologger"

	"github.com/Ixorlive/formal-lang-course/cfg"
	"github.com/Ixorlive/formal-lang-course/cfpq"
	"github.com/Ixorlive/formal-lang-course/graph"
)

// Hellings answers §6's `hellings(cfg, graph)`. cfgText is parsed with
// cfg.FromText under the start symbol from opts (default "S").
func Hellings(cfgText string, gr *graph.Graph, opts ...Option) ([]cfpq.Triple, error) {
	c := newConfig(opts...)
	g, err := cfg.FromText(cfgText, c.start)
	if err != nil {
		gologger.Error().Msgf("query: hellings grammar rejected: %v", err)
		return nil, classifyGrammarErr(err)
	}
	triples := cfpq.Hellings(g, gr)
	gologger.Info().Msgf("query: hellings derived %d triple(s)", len(triples))
	return triples, nil
}

// MatrixCFPQ answers §6's `matrix_cfpq(cfg, graph)`.
func MatrixCFPQ(cfgText string, gr *graph.Graph, opts ...Option) ([]cfpq.Triple, error) {
	c := newConfig(opts...)
	g, err := cfg.FromText(cfgText, c.start)
	if err != nil {
		gologger.Error().Msgf("query: matrix_cfpq grammar rejected: %v", err)
		return nil, classifyGrammarErr(err)
	}
	triples, err := cfpq.Matrix(g, gr)
	if err != nil {
		gologger.Error().Msgf("query: matrix_cfpq failed: %v", err)
		return nil, classifyGraphErr(err)
	}
	gologger.Info().Msgf("query: matrix_cfpq derived %d triple(s)", len(triples))
	return triples, nil
}

// ReachabilityWithNonterminal answers §6's
// `reachability_with_nonterminal(cfg, graph, starts, finals, A, algo)`.
// nonterminal is the bare variable name (e.g. "S"); algo selects the
// engine via cfpq.Algo.
func ReachabilityWithNonterminal(
	cfgText string,
	gr *graph.Graph,
	starts, finals []graph.Node,
	nonterminal string,
	algo cfpq.Algo,
	opts ...Option,
) ([]cfpq.Pair, error) {
	c := newConfig(opts...)
	g, err := cfg.FromText(cfgText, c.start)
	if err != nil {
		gologger.Error().Msgf("query: reachability_with_nonterminal grammar rejected: %v", err)
		return nil, classifyGrammarErr(err)
	}

	target := symbolFromName(nonterminal)
	pairs, err := cfpq.ReachabilityWithNonterminal(g, gr, starts, finals, target, algo)
	if err != nil {
		gologger.Error().Msgf("query: reachability_with_nonterminal failed: %v", err)
		return nil, classifyAlgoErr(err)
	}
	gologger.Info().Msgf("query: reachability_with_nonterminal(%s, %s) matched %d pair(s)", nonterminal, algo, len(pairs))
	return pairs, nil
}
