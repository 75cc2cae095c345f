package graph

import "errors"

var (
	// ErrEmptyNodeID indicates a node with an empty identifier was used.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrMalformedEdgeLine indicates an edge-list line did not match the
	// "src dst label" triple format.
	ErrMalformedEdgeLine = errors.New("graph: malformed edge line")

	// ErrMissingDOTLabel indicates a DOT edge lacked the required "label"
	// attribute.
	ErrMissingDOTLabel = errors.New("graph: DOT edge missing label attribute")
)
