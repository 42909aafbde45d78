// Package graphio reads and writes edge-list graphs for the shortest path
// engine. It is the input-builder side of the engine: files are decoded into
// a Graph, validated against the engine's vertex-range contract and handed
// to floydwarshall.Compute unchanged.
//
// Supported formats:
//
//   - YAML (.yaml, .yml):
//
//     vertices: 3
//     edges: [{from: 0, to: 1, weight: 4}]
//
//   - TOML (.toml):
//
//     vertices = 3
//     [[edges]]
//     from = 0
//     to = 1
//     weight = 4
//
//   - Text (.txt, .edges): the vertex count on the first data line, then one
//     "from to weight" triple per line. '#' starts a comment.
//
// Edge order is preserved in every format, so the engine's last-edge-wins
// rule sees duplicates in file order.
package graphio
