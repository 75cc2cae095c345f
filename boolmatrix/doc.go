// Package boolmatrix implements the sparse Boolean matrix kernel shared by
// the automaton-intersection, transitive-closure, and matrix-CFPQ engines.
//
// A Matrix is a shape-typed n×m sparse bit matrix. Internally a Matrix
// keeps one map[int]struct{} per row (a DOK — dictionary-of-keys — row),
// which gives O(1) Set/Clear/Get and O(nnz) row iteration without ever
// allocating a dense r*c backing array. Product and Kronecker build their
// result the same way, so there is no separate "compile to CSR" step;
// the row-of-sets representation already gives the enumeration and
// fan-in bounds the core asks for, so the API never leaks the storage
// choice to callers.
package boolmatrix
