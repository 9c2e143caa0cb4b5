package critical

import "github.com/tracelab/topolens/ugraph"

// frame is one node's worth of suspended traversal state on the explicit
// DFS stack: the node itself, the index of the edge used to enter it (-1 at
// a component root), a cursor into its arc list, and its tree-child count.
type frame struct {
	node      ugraph.NodeID
	enterEdge int
	cursor    int
	children  int
}

// Components finds every bridge and articulation point of g across all
// connected components.
//
// Steps:
//  1. Validate: g != nil.
//  2. Derive the adjacency view once (each edge contributes an arc to both
//     endpoints, tagged with its edge index).
//  3. From every undiscovered node, run a depth-first traversal on an
//     explicit frame stack, assigning discovery times and low-link values.
//  4. When a child's frame is popped, fold its low-link into the parent and
//     apply the bridge / articulation rules (see package documentation).
//
// Complexity: O(V + E) time, O(V + E) space.
func Components(g *ugraph.Graph) (*Report, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.Size()
	adj := g.Adjacency()

	// disc doubles as the visited marker: 0 means undiscovered, times
	// start at 1.
	disc := make([]int32, n)
	low := make([]int32, n)
	isCut := make([]bool, n)
	var bridges []Bridge
	var timer int32

	var stack []frame
	var root int

	for root = 0; root < n; root++ {
		if disc[root] != 0 {
			continue
		}

		// 3. Open a new component rooted here.
		timer++
		disc[root] = timer
		low[root] = timer
		stack = append(stack[:0], frame{node: ugraph.NodeID(root), enterEdge: -1})

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			if f.cursor < len(adj[f.node]) {
				arc := adj[f.node][f.cursor]
				f.cursor++

				// The single arc we entered on is not a back-edge;
				// a parallel edge has a different index and is.
				if arc.Edge == f.enterEdge {
					continue
				}

				if disc[arc.To] == 0 {
					// Tree edge: descend.
					f.children++
					timer++
					disc[arc.To] = timer
					low[arc.To] = timer
					stack = append(stack, frame{node: arc.To, enterEdge: arc.Edge})
				} else if disc[arc.To] < low[f.node] {
					// Back-edge: an ancestor (or sibling subtree entry
					// point) is reachable without the tree edge.
					low[f.node] = disc[arc.To]
				}

				continue
			}

			// 4. All arcs examined: pop and fold into the parent.
			done := *f
			stack = stack[:len(stack)-1]

			if len(stack) == 0 {
				// Component root: splits the component iff at least
				// two subtrees hang off it.
				if done.children >= 2 {
					isCut[done.node] = true
				}

				continue
			}

			parent := &stack[len(stack)-1]
			if low[done.node] < low[parent.node] {
				low[parent.node] = low[done.node]
			}
			if low[done.node] > disc[parent.node] {
				bridges = append(bridges, Bridge{Parent: parent.node, Child: done.node})
			}
			if low[done.node] >= disc[parent.node] && parent.enterEdge != -1 {
				isCut[parent.node] = true
			}
		}
	}

	// Collect the articulation set in ascending id order.
	points := make([]ugraph.NodeID, 0)
	var v int
	for v = 0; v < n; v++ {
		if isCut[v] {
			points = append(points, ugraph.NodeID(v))
		}
	}

	return &Report{ArticulationPoints: points, Bridges: bridges}, nil
}
