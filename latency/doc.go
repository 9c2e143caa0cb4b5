// Package latency provides the directed weighted graph model for service
// topologies: named nodes connected by edges carrying a latency in integer
// milliseconds.
//
// Model
//
//   - Nodes are identified by unique string names at the boundary and by a
//     dense integer NodeID internally. The name↔id bijection is fixed at
//     construction and layered on top of the index-based core: every
//     algorithm works on ids and resolves names only at the edges of the
//     API.
//   - Adjacency is stored per node as an insertion-ordered slice of
//     (neighbor, latency) pairs. Parallel edges are permitted and not
//     deduplicated. Self-loops are rejected at construction.
//   - Latencies may arrive as floating point (sub-millisecond readings) and
//     are truncated toward zero on ingestion; negative latencies are
//     rejected.
//
// Immutability
//
// A built Graph is never mutated. WithModifications returns a new,
// structurally independent graph with the requested edges reweighted or
// removed, so the original and the what-if variant can be queried side by
// side; concurrent reads of either are safe by construction.
//
// Errors
//
// Construction is all-or-nothing and reports the first violation found:
// ErrDuplicateNode, ErrUnknownFrom, ErrUnknownTo, ErrNegativeLatency,
// ErrSelfLoop, each wrapped with the offending name or value.
// Query and modification lookups fail with ErrNodeNotFound.
package latency
