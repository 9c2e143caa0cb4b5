package mst

import (
	"sort"

	"github.com/tracelab/topolens/dsu"
	"github.com/tracelab/topolens/ugraph"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Validate: g != nil.
//  2. Copy all edges and sort ascending by weight. The sort is stable so
//     equal-weight edges keep their original input order, making the result
//     reproducible.
//  3. Initialize a disjoint-set forest over the node count.
//  4. Scan edges in sorted order; accept (and union) each edge whose
//     endpoints are currently in different sets. Self-loops fail the union
//     check trivially and are never accepted.
//
// For a disconnected graph the scan spans each component independently and
// the result is a minimum spanning forest; no edge-count bound is enforced
// and no error is raised.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *ugraph.Graph) (*Tree, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Edges() already returns an owned copy, safe to sort in place.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Fresh disjoint-set forest; it has no life beyond this call.
	sets := dsu.New(g.Size())

	// 4. Greedy scan: union succeeds exactly when the edge joins two
	//    previously unconnected components.
	span := make([]ugraph.Edge, 0, g.Size())
	var total float64
	var e ugraph.Edge
	for _, e = range edges {
		if sets.Union(int(e.U), int(e.V)) {
			span = append(span, e)
			total += e.Weight
		}
	}

	return &Tree{Edges: span, TotalWeight: total}, nil
}
