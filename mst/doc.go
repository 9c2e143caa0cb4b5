// Package mst computes minimum spanning trees of undirected weighted graphs
// using Kruskal's algorithm over a disjoint-set forest.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning tree
//     is a subset T ⊆ E connecting all of V with minimal total weight. When G
//     is disconnected no single tree exists; Kruskal then yields the minimum
//     spanning forest (an independent minimum tree per connected component),
//     which this package treats as the correct result, not an error.
//
//   - For service topologies the MST answers "which links are structurally
//     indispensable for cheapest full connectivity", complementing the
//     bridge/articulation analysis in package critical.
//
// Algorithm
//
//   - All edges are sorted ascending by weight with sort.SliceStable, so ties
//     resolve by original input order and the result is reproducible for any
//     permutation-equivalent input.
//   - A dsu.DisjointSet is initialized over the node count and each edge is
//     accepted iff its endpoints are still in different sets. Result edges
//     appear in accepted (ascending-weight) order, not input order.
//   - |T| always equals |V| minus the number of connected components.
//
// Complexity:
//
//   - Time:  O(E log E) for the sort, plus O(α(V)·E) for the union scan.
//   - Space: O(V + E).
//
// Errors:
//
//   - ErrNilGraph if the provided graph is nil. Disconnected input is not an
//     error (see above).
package mst
