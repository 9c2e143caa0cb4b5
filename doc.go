// Package topolens is a toolkit for analyzing service topologies and
// network maps — from latency-aware routing to structural health checks.
//
// 🚀 What is topolens?
//
//	A modular library (plus two small CLIs) that brings together:
//		• Latency graphs: named services joined by directed millisecond edges
//		• Shortest paths: Dijkstra with latency caps and bottleneck detection
//		• What-if analysis: overlay edge overrides & drops without mutating the base
//		• Undirected topologies: compact edge-list graphs keyed by integer ids
//		• Spanning trees: Kruskal over a disjoint-set union
//		• Critical infrastructure: bridges & articulation points via one DFS pass
//
// ✨ Why choose topolens?
//
//   - Predictable semantics – integer milliseconds, stable tie-breaking, sentinel errors
//   - Composable – each concern lives in its own small package with a narrow API
//   - CLI-ready – JSON/YAML and CSV loaders plus text & JSON reporters
//
// The packages, roughly bottom-up:
//
//	latency/    — directed latency Graph, Spec parsing types, what-if overlays
//	dijkstra/   — shortest path, SLO caps, bottleneck edge
//	ugraph/     — undirected weighted Graph and adjacency views
//	dsu/        — disjoint-set union (path compression + union by size)
//	mst/        — Kruskal minimum spanning tree / forest
//	critical/   — bridges & articulation points
//	graphio/    — JSON/YAML and CSV graph loaders
//	render/     — text and JSON report shapes shared by the CLIs
//	cmd/        — topopath (path, slo, simulate) & topoconnect (mst, critical, analyze)
//
// Quick ASCII example:
//
//	    web ──2ms── api ──5ms── auth
//	     │                       │
//	     └────────9ms────────────┘
//
//	two routes from web to auth; the 2+5 path wins and auth's 5ms hop
//	is its bottleneck.
//
// Dive into the per-package docs for contracts, complexity notes and
// worked examples.
package topolens
