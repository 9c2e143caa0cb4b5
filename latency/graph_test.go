// Package latency_test covers construction validation, the name↔id
// bijection, latency truncation, and path formatting.
package latency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracelab/topolens/latency"
)

// threeTier is the canonical api → auth → db fixture used across the test
// files in this package.
func threeTier(t *testing.T) *latency.Graph {
	t.Helper()
	g, err := latency.Build(latency.Spec{
		Nodes: []string{"api", "auth", "db"},
		Edges: []latency.EdgeSpec{
			{From: "api", To: "auth", LatencyMS: 5.2},
			{From: "auth", To: "db", LatencyMS: 3.1},
		},
	})
	require.NoError(t, err)

	return g
}

func TestBuild_Valid(t *testing.T) {
	g := threeTier(t)
	assert.Equal(t, 3, g.Order())

	id, err := g.IDOf("auth")
	require.NoError(t, err)
	assert.Equal(t, "auth", g.NameOf(id))
}

func TestBuild_DenseIDsFollowDeclarationOrder(t *testing.T) {
	g := threeTier(t)
	for i, name := range []string{"api", "auth", "db"} {
		id, err := g.IDOf(name)
		require.NoError(t, err)
		assert.Equal(t, latency.NodeID(i), id)
	}
}

func TestBuild_DuplicateNode(t *testing.T) {
	_, err := latency.Build(latency.Spec{Nodes: []string{"a", "b", "a"}})
	assert.ErrorIs(t, err, latency.ErrDuplicateNode)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestBuild_UnknownFrom(t *testing.T) {
	_, err := latency.Build(latency.Spec{
		Nodes: []string{"a", "b"},
		Edges: []latency.EdgeSpec{{From: "ghost", To: "b", LatencyMS: 1}},
	})
	assert.ErrorIs(t, err, latency.ErrUnknownFrom)
}

func TestBuild_UnknownTo(t *testing.T) {
	_, err := latency.Build(latency.Spec{
		Nodes: []string{"a", "b"},
		Edges: []latency.EdgeSpec{{From: "a", To: "ghost", LatencyMS: 1}},
	})
	assert.ErrorIs(t, err, latency.ErrUnknownTo)
}

func TestBuild_NegativeLatency(t *testing.T) {
	_, err := latency.Build(latency.Spec{
		Nodes: []string{"a", "b"},
		Edges: []latency.EdgeSpec{{From: "a", To: "b", LatencyMS: -0.5}},
	})
	assert.ErrorIs(t, err, latency.ErrNegativeLatency)
}

func TestBuild_SelfLoop(t *testing.T) {
	_, err := latency.Build(latency.Spec{
		Nodes: []string{"a", "b"},
		Edges: []latency.EdgeSpec{{From: "a", To: "a", LatencyMS: 5}},
	})
	assert.ErrorIs(t, err, latency.ErrSelfLoop)
}

func TestBuild_TruncatesTowardZero(t *testing.T) {
	// 5.2ms and 3.9ms become 5ms and 3ms: sub-millisecond precision is
	// discarded, not rounded.
	g, err := latency.Build(latency.Spec{
		Nodes: []string{"a", "b", "c"},
		Edges: []latency.EdgeSpec{
			{From: "a", To: "b", LatencyMS: 5.2},
			{From: "b", To: "c", LatencyMS: 3.9},
		},
	})
	require.NoError(t, err)

	var got []int64
	a, _ := g.IDOf("a")
	b, _ := g.IDOf("b")
	g.EachNeighbor(a, func(_ latency.NodeID, ms int64) { got = append(got, ms) })
	g.EachNeighbor(b, func(_ latency.NodeID, ms int64) { got = append(got, ms) })
	assert.Equal(t, []int64{5, 3}, got)
}

func TestIDOf_NotFound(t *testing.T) {
	g := threeTier(t)
	_, err := g.IDOf("cache")
	assert.ErrorIs(t, err, latency.ErrNodeNotFound)
}

func TestEachNeighbor_InsertionOrder(t *testing.T) {
	g, err := latency.Build(latency.Spec{
		Nodes: []string{"a", "b", "c", "d"},
		Edges: []latency.EdgeSpec{
			{From: "a", To: "c", LatencyMS: 3},
			{From: "a", To: "b", LatencyMS: 1},
			{From: "a", To: "d", LatencyMS: 2},
		},
	})
	require.NoError(t, err)

	a, _ := g.IDOf("a")
	var order []string
	g.EachNeighbor(a, func(to latency.NodeID, _ int64) { order = append(order, g.NameOf(to)) })
	assert.Equal(t, []string{"c", "b", "d"}, order)
}

func TestFormatPath(t *testing.T) {
	g := threeTier(t)
	api, _ := g.IDOf("api")
	auth, _ := g.IDOf("auth")
	db, _ := g.IDOf("db")

	p := latency.Path{From: api, To: db, Nodes: []latency.NodeID{api, auth, db}}
	assert.Equal(t, "api → auth → db", g.FormatPath(p))
}

func TestFormatPath_SingleNode(t *testing.T) {
	g := threeTier(t)
	api, _ := g.IDOf("api")
	p := latency.Path{From: api, To: api, Nodes: []latency.NodeID{api}}
	assert.Equal(t, "api", g.FormatPath(p))
}
