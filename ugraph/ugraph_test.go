package ugraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracelab/topolens/ugraph"
)

func TestNew_Empty(t *testing.T) {
	g := ugraph.New(4)
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
}

func TestAddEdge_InsertionOrderPreserved(t *testing.T) {
	g := ugraph.New(3)
	g.AddEdge(0, 1, 1.5)
	g.AddEdge(1, 2, 2.0)
	g.AddEdge(2, 0, 1.0)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, ugraph.Edge{U: 0, V: 1, Weight: 1.5}, edges[0])
	assert.Equal(t, ugraph.Edge{U: 1, V: 2, Weight: 2.0}, edges[1])
	assert.Equal(t, ugraph.Edge{U: 2, V: 0, Weight: 1.0}, edges[2])
}

func TestAddEdge_ParallelEdgesKept(t *testing.T) {
	// Parallel edges are permitted and never deduplicated.
	g := ugraph.New(2)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(0, 1, 2.0)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_OutOfBoundsPanics(t *testing.T) {
	g := ugraph.New(2)
	assert.Panics(t, func() { g.AddEdge(0, 2, 1.0) })
	assert.Panics(t, func() { g.AddEdge(5, 0, 1.0) })
	assert.Panics(t, func() { g.AddEdge(-1, 0, 1.0) })
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := ugraph.New(2)
	g.AddEdge(0, 1, 1.0)

	edges := g.Edges()
	edges[0].Weight = 99.0

	assert.Equal(t, 1.0, g.Edges()[0].Weight)
}

func TestAdjacency_BothDirections(t *testing.T) {
	// Each undirected edge must appear in both endpoints' arc lists,
	// carrying the index of the originating edge.
	g := ugraph.New(3)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 2.0)

	adj := g.Adjacency()
	require.Len(t, adj, 3)

	assert.Equal(t, []ugraph.Arc{{To: 1, Edge: 0}}, adj[0])
	assert.Equal(t, []ugraph.Arc{{To: 0, Edge: 0}, {To: 2, Edge: 1}}, adj[1])
	assert.Equal(t, []ugraph.Arc{{To: 1, Edge: 1}}, adj[2])
}

func TestAdjacency_SelfLoopContributesTwoArcs(t *testing.T) {
	g := ugraph.New(1)
	g.AddEdge(0, 0, 1.0)

	adj := g.Adjacency()
	require.Len(t, adj[0], 2)
	assert.Equal(t, ugraph.NodeID(0), adj[0][0].To)
	assert.Equal(t, ugraph.NodeID(0), adj[0][1].To)
}
