// Package mst defines the result type and sentinel errors for spanning-tree
// computation.
package mst

import (
	"errors"

	"github.com/tracelab/topolens/ugraph"
)

// ErrNilGraph is returned when a nil *ugraph.Graph is passed to Kruskal.
var ErrNilGraph = errors.New("mst: graph is nil")

// Tree is the spanning forest selected by Kruskal: the accepted edges in
// ascending-weight processing order and their weight sum.
//
// The edge slice owns copies of the input edges and holds no references back
// into the source graph.
type Tree struct {
	// Edges are the spanning edges in the order the union step accepted
	// them (ascending weight, ties by input order).
	Edges []ugraph.Edge

	// TotalWeight is the sum of the accepted edges' weights.
	TotalWeight float64
}

// Len returns the number of spanning edges. For a graph with n nodes and c
// connected components this is always n - c.
func (t *Tree) Len() int { return len(t.Edges) }
