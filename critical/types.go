// Package critical defines the result types and sentinel errors for
// bridge/articulation-point discovery.
package critical

import (
	"errors"

	"github.com/tracelab/topolens/ugraph"
)

// ErrNilGraph is returned when a nil *ugraph.Graph is passed to Components.
var ErrNilGraph = errors.New("critical: graph is nil")

// Bridge is a bridge edge reported in the direction the traversal discovered
// it: Parent is the endpoint closer to its component's traversal root.
type Bridge struct {
	Parent, Child ugraph.NodeID
}

// Report holds the complete critical-component analysis of a graph.
//
// ArticulationPoints is a set: each qualifying node appears exactly once, in
// ascending id order. Bridges follow the traversal's post-order, matching
// the order a recursive implementation would emit them.
//
// Both slices own their node identifiers and hold no references back into
// the analyzed graph.
type Report struct {
	ArticulationPoints []ugraph.NodeID
	Bridges            []Bridge
}
