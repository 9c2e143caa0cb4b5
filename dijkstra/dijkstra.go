package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/tracelab/topolens/latency"
)

// ShortestPath computes the minimum-total-latency path from the node named
// from to the node named to, returning the traversed node sequence, its
// cost, and the bottleneck edge.
//
// Preconditions and validation (in order):
//
//  1. g must be non-nil (ErrNilGraph).
//  2. Both endpoint names must resolve (latency.ErrNodeNotFound).
//
// A query with from == to succeeds trivially: a single-node path of cost 0
// and no bottleneck. Negative latencies cannot occur here (the graph
// rejects them at construction), so no pre-scan is needed.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *latency.Graph, from, to string, opts ...Option) (latency.Path, error) {
	// 1. Apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2. Validate the graph.
	if g == nil {
		return latency.Path{}, ErrNilGraph
	}

	// 3. Resolve both endpoints before any allocation.
	src, err := g.IDOf(from)
	if err != nil {
		return latency.Path{}, err
	}
	dst, err := g.IDOf(to)
	if err != nil {
		return latency.Path{}, err
	}

	// 4. Run the search.
	r := newRunner(g, cfg)
	if !r.run(src, dst) {
		return latency.Path{}, fmt.Errorf("%w: %s→%s", ErrPathNotFound, from, to)
	}

	// 5. Reconstruct the node sequence and find its bottleneck.
	nodes := r.walkBack(src, dst)

	return latency.Path{
		From:       src,
		To:         dst,
		Nodes:      nodes,
		CostMS:     r.dist[dst],
		Bottleneck: bottleneck(g, nodes),
	}, nil
}

// runner holds the dense mutable state of a single search. It is rebuilt
// per query; nothing is shared between invocations.
type runner struct {
	g       *latency.Graph
	cfg     Options
	dist    []int64          // id → best known distance (MaxInt64 = unreached)
	parent  []latency.NodeID // id → predecessor on the best path (-1 = none)
	visited []bool           // id → distance finalized
	pq      frontier
}

func newRunner(g *latency.Graph, cfg Options) *runner {
	n := g.Order()
	dist := make([]int64, n)
	parent := make([]latency.NodeID, n)
	var i int
	for i = 0; i < n; i++ {
		dist[i] = math.MaxInt64
		parent[i] = -1
	}

	return &runner{
		g:       g,
		cfg:     cfg,
		dist:    dist,
		parent:  parent,
		visited: make([]bool, n),
		pq:      make(frontier, 0, n),
	}
}

// run executes the main loop and reports whether dst was reached.
func (r *runner) run(src, dst latency.NodeID) bool {
	// 1. Seed the frontier with the source at distance 0.
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{id: src, dist: 0})

	for r.pq.Len() > 0 {
		// 2. Pop the closest frontier entry.
		item := heap.Pop(&r.pq).(frontierItem)

		// 3. Abandon once the frontier minimum exceeds the latency cap;
		//    everything still queued is at least this far away.
		if item.dist > r.cfg.MaxLatencyMS {
			return false
		}

		// 4. Early exit: once the target pops, its distance is final and
		//    no shorter path can appear later.
		if item.id == dst {
			return true
		}

		// 5. Skip stale entries left behind by lazy decrease-key.
		if r.visited[item.id] {
			continue
		}

		r.visited[item.id] = true
		r.relax(item.id)
	}

	return false
}

// relax attempts to improve every neighbor of u through u, recording parent
// pointers and pushing improved distances onto the frontier.
func (r *runner) relax(u latency.NodeID) {
	du := r.dist[u]
	r.g.EachNeighbor(u, func(v latency.NodeID, ms int64) {
		next := du + ms
		// Strict improvement only: equal distances would just add
		// duplicate heap entries without changing the result.
		if next >= r.dist[v] {
			return
		}
		r.dist[v] = next
		r.parent[v] = u
		heap.Push(&r.pq, frontierItem{id: v, dist: next})
	})
}

// walkBack rebuilds the src→dst node sequence by following parent pointers
// from dst and reversing. For src == dst the result is the single node.
func (r *runner) walkBack(src, dst latency.NodeID) []latency.NodeID {
	nodes := []latency.NodeID{dst}
	cur := dst
	for cur != src {
		cur = r.parent[cur]
		nodes = append(nodes, cur)
	}
	var i, j int
	for i, j = 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes
}

// bottleneck re-queries the adjacency list of each consecutive pair along
// nodes and returns the first edge whose latency strictly exceeds the
// running maximum; under ties the earlier edge wins. Nil when the path has
// fewer than two nodes.
func bottleneck(g *latency.Graph, nodes []latency.NodeID) *latency.Edge {
	var best *latency.Edge
	var max int64
	var i int
	for i = 0; i+1 < len(nodes); i++ {
		from, to := nodes[i], nodes[i+1]
		done := false
		g.EachNeighbor(from, func(v latency.NodeID, ms int64) {
			// Scan matching adjacency entries until one strictly beats
			// the running max, then stop for this hop. A parallel edge
			// heavier than the one the path used can win here.
			if done || v != to {
				return
			}
			if ms > max {
				max = ms
				best = &latency.Edge{From: from, To: to, LatencyMS: ms}
				done = true
			}
		})
	}

	return best
}

// frontierItem pairs a node with its tentative distance for heap ordering.
type frontierItem struct {
	id   latency.NodeID
	dist int64
}

// frontier is a min-heap of frontierItem ordered by ascending distance.
// Under lazy decrease-key the same node may appear multiple times; stale
// entries are filtered on pop via the runner's visited marks.
type frontier []frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
