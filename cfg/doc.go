// Package cfg implements the context-free grammar value from §3/§4.4: a
// set of productions A → α over variables and terminals, plus the
// to_weak_cfg normalization pipeline (unit-production elimination,
// useless-symbol removal, terminal wrapping, binarization) that Hellings
// and the matrix CFPQ engine both require as a precondition.
//
// Grounded on original_source/project/cfg_utils.py's to_weak_cfg, which
// composes pyformlang's eliminate_unit_productions ->
// remove_useless_symbols -> decompose_productions in that order; this
// package reimplements the same three-stage pipeline directly over
// symbol.Symbol productions, in lvlath's builder-then-validate style.
package cfg
