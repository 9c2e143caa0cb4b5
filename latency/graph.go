package latency

import (
	"fmt"
	"strings"
)

// halfEdge is one adjacency entry: the neighbor reached and the latency of
// the edge leading there. The source node is implied by the list the entry
// lives in.
type halfEdge struct {
	to NodeID
	ms int64
}

// Graph is an immutable directed latency graph. Construct with Build;
// derive what-if variants with WithModifications. All exported methods are
// read-only, so a Graph may be shared freely across goroutines.
type Graph struct {
	names []string         // id → name
	ids   map[string]NodeID // name → id
	adj   [][]halfEdge      // id → insertion-ordered out-edges
}

// Build validates spec and constructs the graph.
//
// Validation is eager and all-or-nothing, reporting the first violation:
//
//  1. ErrDuplicateNode    — a node name repeats.
//  2. ErrUnknownFrom/To   — an edge endpoint was never declared.
//  3. ErrNegativeLatency  — an edge latency is < 0.
//  4. ErrSelfLoop         — an edge with from == to.
//
// Fractional latencies are truncated toward zero to whole milliseconds.
//
// Complexity: O(V + E) time and space.
func Build(spec Spec) (*Graph, error) {
	// 1. Establish the name↔id bijection, rejecting duplicates.
	names := make([]string, 0, len(spec.Nodes))
	ids := make(map[string]NodeID, len(spec.Nodes))
	var name string
	for _, name = range spec.Nodes {
		if _, seen := ids[name]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		ids[name] = NodeID(len(names))
		names = append(names, name)
	}

	// 2. Validate and ingest edges in declaration order.
	adj := make([][]halfEdge, len(names))
	var e EdgeSpec
	for _, e = range spec.Edges {
		from, ok := ids[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFrom, e.From)
		}
		to, ok := ids[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTo, e.To)
		}
		if e.LatencyMS < 0 {
			return nil, fmt.Errorf("%w: %s→%s (%g)", ErrNegativeLatency, e.From, e.To, e.LatencyMS)
		}
		if from == to {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.From)
		}

		// Truncation toward zero: sub-millisecond precision is discarded,
		// matching the model's integer-millisecond resolution.
		adj[from] = append(adj[from], halfEdge{to: to, ms: int64(e.LatencyMS)})
	}

	return &Graph{names: names, ids: ids, adj: adj}, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.names) }

// IDOf resolves a node name to its dense id, failing with ErrNodeNotFound
// for names absent from the graph.
func (g *Graph) IDOf(name string) (NodeID, error) {
	id, ok := g.ids[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return id, nil
}

// NameOf resolves a dense id back to its node name. Passing an id that this
// graph never issued is a caller bug and panics via the slice bounds check.
func (g *Graph) NameOf(id NodeID) string { return g.names[id] }

// Degree returns the out-degree of id.
func (g *Graph) Degree(id NodeID) int { return len(g.adj[id]) }

// EachNeighbor visits id's out-edges in insertion order without allocating.
// The solver's relaxation loop and the bottleneck pass both ride on this.
func (g *Graph) EachNeighbor(id NodeID, fn func(to NodeID, latencyMS int64)) {
	var h halfEdge
	for _, h = range g.adj[id] {
		fn(h.to, h.ms)
	}
}

// FormatPath renders a path's node sequence as a human-readable route,
// e.g. "api → auth → db".
func (g *Graph) FormatPath(p Path) string {
	parts := make([]string, len(p.Nodes))
	var i int
	var id NodeID
	for i, id = range p.Nodes {
		parts[i] = g.names[id]
	}

	return strings.Join(parts, " → ")
}
