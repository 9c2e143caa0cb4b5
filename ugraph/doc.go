// Package ugraph provides the undirected weighted graph model consumed by
// the structural connectivity algorithms (mst.Kruskal, critical.Components).
//
// Model
//
//   - Nodes are dense integer identifiers 0..n-1, fixed at construction by
//     New(n). There is no naming layer: callers that need human-readable
//     labels keep their own mapping.
//   - Edges are an ordered sequence of unordered pairs {u, v} with a
//     float64 weight, appended via AddEdge. Parallel edges are permitted and
//     never deduplicated; self-loops are permitted (and simply irrelevant to
//     spanning trees and connectivity cuts).
//   - No adjacency structure is stored. Each algorithm derives the adjacency
//     view it needs on demand, with every undirected edge contributing an
//     entry to both endpoints' lists.
//
// Contract
//
// Both endpoints of every edge must be < n. A violation is a loader defect,
// not bad input data, so AddEdge panics rather than returning an error:
// by the time edges are appended the node count is already settled.
//
// Complexity: O(1) per AddEdge, O(E) for Edges and adjacency derivation.
package ugraph
