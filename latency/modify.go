package latency

import "fmt"

// WithModifications returns a new, structurally independent graph with the
// named drops removed and the named overrides reweighted. The receiver is
// never mutated: the original and the modified graph can be queried side by
// side, which is the point of a what-if simulation.
//
// Semantics:
//
//   - A drop removes every adjacency entry matching from→to, parallel
//     duplicates included.
//   - An override rewrites only the first adjacency entry matching from→to;
//     duplicates beyond the first keep their previous latency. An override
//     naming a pair with no edge between them is a silent no-op.
//
// Drops are applied before overrides, so overriding a dropped edge is also
// a no-op rather than a resurrection.
//
// Fails with ErrNodeNotFound if any named node in either list is absent
// from the graph; in that case no partial result is produced.
//
// Complexity: O(V + E) for the structural copy plus O(deg) per named edge.
func (g *Graph) WithModifications(overrides []Override, drops []Drop) (*Graph, error) {
	// 1. Resolve every named node up front so failure precedes any work.
	type edgeRef struct{ from, to NodeID }
	dropRefs := make([]edgeRef, len(drops))
	var i int
	var d Drop
	for i, d = range drops {
		from, err := g.IDOf(d.From)
		if err != nil {
			return nil, err
		}
		to, err := g.IDOf(d.To)
		if err != nil {
			return nil, err
		}
		dropRefs[i] = edgeRef{from: from, to: to}
	}

	type overrideRef struct {
		from, to NodeID
		ms       int64
	}
	ovrRefs := make([]overrideRef, len(overrides))
	var o Override
	for i, o = range overrides {
		from, err := g.IDOf(o.From)
		if err != nil {
			return nil, err
		}
		to, err := g.IDOf(o.To)
		if err != nil {
			return nil, err
		}
		if o.LatencyMS < 0 {
			return nil, fmt.Errorf("%w: %s→%s (%d)", ErrNegativeLatency, o.From, o.To, o.LatencyMS)
		}
		ovrRefs[i] = overrideRef{from: from, to: to, ms: o.LatencyMS}
	}

	// 2. Structural copy: names and the id map are immutable and shared;
	//    adjacency slices are deep-copied so edits stay private.
	adj := make([][]halfEdge, len(g.adj))
	for i = range g.adj {
		adj[i] = append([]halfEdge(nil), g.adj[i]...)
	}

	// 3. Drops: retain everything except exact from→to matches.
	var ref edgeRef
	for _, ref = range dropRefs {
		kept := adj[ref.from][:0]
		var h halfEdge
		for _, h = range adj[ref.from] {
			if h.to != ref.to {
				kept = append(kept, h)
			}
		}
		adj[ref.from] = kept
	}

	// 4. Overrides: rewrite the first match only.
	var ovr overrideRef
	for _, ovr = range ovrRefs {
		for j := range adj[ovr.from] {
			if adj[ovr.from][j].to == ovr.to {
				adj[ovr.from][j].ms = ovr.ms
				break
			}
		}
	}

	return &Graph{names: g.names, ids: g.ids, adj: adj}, nil
}
