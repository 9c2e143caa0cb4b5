// Package latency defines the value objects and sentinel errors of the
// directed latency-graph model.
package latency

import "errors"

// Sentinel errors reported by graph construction and lookup.
var (
	// ErrDuplicateNode indicates that a node name appears more than once
	// in the declared node list.
	ErrDuplicateNode = errors.New("latency: duplicate node name")

	// ErrUnknownFrom indicates that an edge references an undeclared
	// source node.
	ErrUnknownFrom = errors.New("latency: unknown node in edge 'from'")

	// ErrUnknownTo indicates that an edge references an undeclared
	// destination node.
	ErrUnknownTo = errors.New("latency: unknown node in edge 'to'")

	// ErrNegativeLatency indicates that an edge carries a negative
	// latency, which the model rejects outright.
	ErrNegativeLatency = errors.New("latency: negative edge latency")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("latency: self loop")

	// ErrNodeNotFound indicates that a queried node name is absent from
	// the graph.
	ErrNodeNotFound = errors.New("latency: node not found")
)

// NodeID is the opaque dense integer identity of a node, an index into the
// 0..n-1 range established at construction.
type NodeID int32

// Spec is the validated-input contract for Build: an ordered node-name list
// and an ordered edge list. Loaders (package graphio) produce it from JSON
// or YAML files; Build re-validates everything defensively regardless.
type Spec struct {
	Nodes []string   `json:"nodes" yaml:"nodes"`
	Edges []EdgeSpec `json:"edges" yaml:"edges"`
}

// EdgeSpec is one directed edge in a Spec. LatencyMS may carry fractional
// milliseconds; Build truncates toward zero.
type EdgeSpec struct {
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	LatencyMS float64 `json:"latency_ms" yaml:"latency_ms"`
}

// Edge is a directed edge resolved to node ids, as it appears in results
// (most notably as a Path's bottleneck).
type Edge struct {
	From      NodeID
	To        NodeID
	LatencyMS int64
}

// Path is the result of a shortest-path query: the traversed node sequence
// (source first, destination last, length >= 1), the accumulated cost, and
// the bottleneck edge: the first maximum-latency edge encountered walking
// source→destination, nil only for a single-node path.
//
// A Path owns its node slice and holds no references into the graph that
// produced it.
type Path struct {
	From       NodeID
	To         NodeID
	Nodes      []NodeID
	CostMS     int64
	Bottleneck *Edge
}

// Override names a directed edge whose latency a what-if simulation
// replaces. Only the first matching adjacency entry is rewritten; parallel
// duplicates beyond the first keep their weight (see WithModifications).
type Override struct {
	From      string
	To        string
	LatencyMS int64
}

// Drop names a directed edge a what-if simulation removes. Every adjacency
// entry matching from→to is removed, parallel duplicates included.
type Drop struct {
	From string
	To   string
}
