// Package graphio loads graph files into the in-memory models.
//
// Two formats are supported, one per model:
//
//   - Latency graphs (directed, named nodes): a JSON document with a
//     "nodes" name list and an "edges" list of {from, to, latency_ms}
//     objects. Files ending in .yaml or .yml are parsed as the equivalent
//     YAML instead.
//
//   - Topology graphs (undirected, dense ids): a three-column tabular file
//     u,v,weight. An optional header row is skipped when the first field
//     reads "u", "from" or "source" (case-insensitive). The graph is sized
//     to the maximum node id found plus one, so ids need not be contiguous.
//
// The loaders parse and hand over to the models, which re-validate
// defensively; loader errors carry the offending file, row and token so the
// CLI can print a precise diagnostic.
package graphio
