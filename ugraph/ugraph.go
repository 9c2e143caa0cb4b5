package ugraph

import "fmt"

// NodeID identifies a node as a dense integer index in 0..n-1.
type NodeID int32

// Edge is an unordered pair {U, V} with a real-valued weight.
type Edge struct {
	U, V   NodeID
	Weight float64
}

// Graph is an undirected weighted graph: a fixed node count plus an ordered
// edge sequence. The zero value is an empty graph with zero nodes; construct
// with New to size the node set before appending edges.
type Graph struct {
	nodes int
	edges []Edge
}

// New creates a graph with n nodes (identifiers 0..n-1) and no edges.
func New(n int) *Graph {
	return &Graph{nodes: n}
}

// AddEdge appends the undirected edge {u, v} with the given weight.
//
// AddEdge panics if either endpoint is outside 0..n-1. An out-of-bounds
// endpoint means the loader sized the graph incorrectly before appending
// edges.
func (g *Graph) AddEdge(u, v NodeID, weight float64) {
	if u < 0 || int(u) >= g.nodes || v < 0 || int(v) >= g.nodes {
		panic(fmt.Sprintf("ugraph: edge {%d,%d} endpoints out of bounds for %d nodes", u, v, g.nodes))
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})
}

// Size returns the node count n.
func (g *Graph) Size() int { return g.nodes }

// EdgeCount returns the number of edges appended so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge sequence in insertion order. Mutating the
// returned slice never affects the graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Arc is one directional half of an undirected edge inside an adjacency
// view: the neighbor reached and the index of the originating edge in the
// graph's edge sequence. Carrying the edge index lets traversals distinguish
// "the edge I arrived on" from a parallel edge between the same endpoints.
type Arc struct {
	To   NodeID
	Edge int
}

// Adjacency derives the adjacency view of the graph: for each node, the
// arcs leaving it, with every undirected edge contributing one arc to both
// endpoints' lists (two arcs on the same node for a self-loop).
//
// The view is rebuilt on every call; the graph itself stores only the edge
// sequence.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Adjacency() [][]Arc {
	adj := make([][]Arc, g.nodes)

	// Count degrees first so each per-node slice is allocated exactly once.
	deg := make([]int, g.nodes)
	var e Edge
	for _, e = range g.edges {
		deg[e.U]++
		deg[e.V]++
	}
	var v int
	for v = 0; v < g.nodes; v++ {
		adj[v] = make([]Arc, 0, deg[v])
	}

	var i int
	for i, e = range g.edges {
		adj[e.U] = append(adj[e.U], Arc{To: e.V, Edge: i})
		adj[e.V] = append(adj[e.V], Arc{To: e.U, Edge: i})
	}

	return adj
}
