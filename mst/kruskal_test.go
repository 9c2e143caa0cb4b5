// Package mst_test validates Kruskal over triangles, squares, disconnected
// forests, tie-breaking, and the component-count identity |T| = |V| - c.
package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracelab/topolens/mst"
	"github.com/tracelab/topolens/ugraph"
)

func TestKruskal_NilGraph(t *testing.T) {
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}

func TestKruskal_EmptyGraph(t *testing.T) {
	tree, err := mst.Kruskal(ugraph.New(0))
	require.NoError(t, err)
	assert.Zero(t, tree.Len())
	assert.Zero(t, tree.TotalWeight)
}

func TestKruskal_SingleNode(t *testing.T) {
	tree, err := mst.Kruskal(ugraph.New(1))
	require.NoError(t, err)
	assert.Zero(t, tree.Len())
}

func TestKruskal_Triangle(t *testing.T) {
	// 0-1 (1.0), 1-2 (2.0), 2-0 (3.0): the heaviest edge closes a cycle
	// and must be rejected.
	g := ugraph.New(3)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 2.0)
	g.AddEdge(2, 0, 3.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 3.0, tree.TotalWeight)
}

func TestKruskal_SquareWithDiagonal(t *testing.T) {
	g := ugraph.New(4)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 2.0)
	g.AddEdge(2, 3, 3.0)
	g.AddEdge(3, 0, 4.0)
	g.AddEdge(0, 2, 5.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 6.0, tree.TotalWeight)
}

func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	// Two path components {0-1, 1-2} and {3-4, 4-5}: every edge is already
	// tree-forming, so the forest keeps all of them.
	g := ugraph.New(6)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 2.0)
	g.AddEdge(3, 4, 3.0)
	g.AddEdge(4, 5, 4.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, 10.0, tree.TotalWeight)
}

func TestKruskal_EdgeCountEqualsNodesMinusComponents(t *testing.T) {
	// 7 nodes, 3 components: {0,1,2} triangle, {3,4} edge, {5,6} edge.
	g := ugraph.New(7)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 1.0)
	g.AddEdge(2, 0, 1.0)
	g.AddEdge(3, 4, 2.0)
	g.AddEdge(5, 6, 2.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 7-3, tree.Len())
}

func TestKruskal_ResultInAcceptedOrder(t *testing.T) {
	// Output order follows ascending-weight processing, not input order.
	g := ugraph.New(3)
	g.AddEdge(0, 1, 5.0)
	g.AddEdge(1, 2, 1.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
	assert.Equal(t, 1.0, tree.Edges[0].Weight)
	assert.Equal(t, 5.0, tree.Edges[1].Weight)
}

func TestKruskal_StableTieBreak(t *testing.T) {
	// Two equal-weight edges both spanning: insertion order must survive
	// the stable sort.
	g := ugraph.New(3)
	g.AddEdge(2, 1, 1.0)
	g.AddEdge(0, 1, 1.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
	assert.Equal(t, ugraph.NodeID(2), tree.Edges[0].U)
	assert.Equal(t, ugraph.NodeID(0), tree.Edges[1].U)
}

func TestKruskal_SelfLoopNeverAccepted(t *testing.T) {
	g := ugraph.New(2)
	g.AddEdge(0, 0, 0.1)
	g.AddEdge(0, 1, 1.0)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Len())
	assert.Equal(t, 1.0, tree.TotalWeight)
}

func TestKruskal_WeightInvariantUnderReordering(t *testing.T) {
	// Total weight must not depend on the input edge order. Build a random
	// graph, then recompute after shuffling the edge list.
	r := rand.New(rand.NewSource(42))
	const n = 50
	edges := make([]ugraph.Edge, 0, 120)
	for i := 1; i < n; i++ {
		edges = append(edges, ugraph.Edge{U: ugraph.NodeID(i - 1), V: ugraph.NodeID(i), Weight: 1 + r.Float64()*9})
	}
	for len(edges) < 120 {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, ugraph.Edge{U: ugraph.NodeID(u), V: ugraph.NodeID(v), Weight: 1 + r.Float64()*99})
	}

	build := func(es []ugraph.Edge) *ugraph.Graph {
		g := ugraph.New(n)
		for _, e := range es {
			g.AddEdge(e.U, e.V, e.Weight)
		}
		return g
	}

	base, err := mst.Kruskal(build(edges))
	require.NoError(t, err)

	shuffled := make([]ugraph.Edge, len(edges))
	copy(shuffled, edges)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	again, err := mst.Kruskal(build(shuffled))
	require.NoError(t, err)

	assert.InDelta(t, base.TotalWeight, again.TotalWeight, 1e-9)
	assert.Equal(t, base.Len(), again.Len())
}
