// Package query is the library-surface facade described in §6: the five
// query entry points (regular_query, find_accessible, hellings,
// matrix_cfpq, reachability_with_nonterminal) wired over the grammar,
// graph, CFPQ, and RPQ engines, plus the error classification from §7.
//
// Each entry point accepts grammar/regex text and a *graph.Graph value,
// parses and validates the grammar side, classifies any failure into one
// of the four §7 error kinds, and logs progress through gologger — the
// same structured-logging idiom projectdiscovery's own tools use rather
// than ad hoc fmt.Printf diagnostics.
package query
