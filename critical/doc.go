// Package critical discovers the structurally critical components of an
// undirected graph: bridges and articulation points, found together in a
// single depth-first traversal.
//
// What & Why
//
//   - A bridge is an edge whose removal increases the number of connected
//     components; an articulation point is a node whose removal does. In a
//     service topology these are the links and hubs with no redundancy,
//     the places where one failure partitions the system.
//
//   - Both properties fall out of the same discovery-time/low-link traversal
//     (Tarjan): low[v] is the smallest discovery time reachable from v's
//     subtree via at most one back-edge, excluding the edge back to v's
//     immediate parent. Edge weights are irrelevant here and ignored.
//
// Rules applied per tree edge (u, v):
//
//   - low[v] > disc[u]  ⇒ (u, v) is a bridge: nothing in v's subtree climbs
//     above u without the tree edge itself.
//   - low[v] >= disc[u] and u is not its component's traversal root ⇒ u is
//     an articulation point.
//   - A traversal root is an articulation point iff it has two or more tree
//     children.
//
// The traversal runs on an explicit frame stack rather than recursion, so
// worst-case chain-shaped graphs (recursion depth = graph diameter) cannot
// overflow the goroutine stack. Disconnected input is handled by restarting
// from every undiscovered node. The entering edge is identified by its edge
// index, not by its endpoint, so a parallel edge between the same pair
// correctly acts as a back-edge and suppresses the bridge.
//
// Complexity:
//
//   - Time:  O(V + E), each node and edge visited a constant number of times.
//   - Space: O(V + E) for the adjacency view, label arrays and frame stack.
//
// Errors:
//
//   - ErrNilGraph if the provided graph is nil. A graph with zero edges
//     yields empty results for both sets.
package critical
