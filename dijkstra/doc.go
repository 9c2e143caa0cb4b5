// Package dijkstra implements the single-source, single-target shortest-path
// solver for directed latency graphs, with path reconstruction and
// bottleneck-edge identification.
//
// Algorithm
//
//   - Classic Dijkstra with a min-heap priority queue keyed by tentative
//     distance and a "lazy decrease-key" strategy: improved distances push
//     duplicate heap entries, and stale entries are skipped when popped.
//     Ties among equal-distance candidates break arbitrarily (heap order);
//     with non-negative integer latencies this never affects the cost.
//   - Distances start at a sentinel exceeding any representable sum
//     (math.MaxInt64); parent pointers are recorded per successful
//     relaxation.
//   - The search exits the instant the target is popped from the frontier:
//     once popped, its distance is final, because with non-negative weights
//     no later pop can be closer.
//   - The path is rebuilt by walking parents backward from the target and
//     reversing. A second linear pass over consecutive node pairs re-queries
//     the adjacency lists to find the bottleneck: the first edge whose
//     latency strictly exceeds the running maximum, so under ties the
//     earliest maximal edge walking source→destination wins. With parallel
//     edges on a hop, entries are scanned until one strictly beats the
//     running maximum; the reported bottleneck can therefore be a heavier
//     parallel edge than the one the path cost used.
//
// Accumulated costs are assumed to fit comfortably in 64-bit signed
// arithmetic for realistic topologies; this is a documented assumption, not
// a runtime-checked guarantee.
//
// Complexity:
//
//   - Time:  O((V + E) log V): at most V useful pops and E pushes.
//   - Space: O(V + E): dense label arrays plus the heap under lazy
//     decrease-key.
//
// Options:
//
//   - WithMaxLatency(ms): abandon the search once the frontier minimum
//     exceeds ms; the query then fails with ErrPathNotFound.
//
// Errors:
//
//   - ErrNilGraph             if the graph is nil.
//   - latency.ErrNodeNotFound if either endpoint name is absent.
//   - ErrPathNotFound         if both endpoints exist but no path connects
//     them (or none within the latency cap).
package dijkstra
