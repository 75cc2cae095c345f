// Package ecfg implements the extended CFG value from §3/§4.7: a grammar
// where each variable's single production body is a regular expression
// over terminals and variables, plus its conversion to a recursive state
// machine (ToRSM, the Go name for the original's to_rfa).
//
// Grounded on original_source/project/ecfg.py: from_text parses one
// "Head -> regex" line per variable; from_cfg groups a cfg.CFG's
// productions by head and OR-joins their bodies, using "$" for ε exactly
// as the original's from_cfg does; to_rfa (here ToRSM) compiles each
// body regex to a minimal DFA via package automaton and bundles them as
// an rsm.RSM.
package ecfg
