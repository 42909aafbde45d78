// Package floydwarshall computes all-pairs shortest paths on weighted directed
// graphs with the Floyd–Warshall algorithm, including next-hop path
// reconstruction and negative-cycle detection.
//
// Overview:
//
//   - Vertices are dense integers in [0, n); the graph is an ordered edge list.
//   - Compute returns a distance matrix, a next-hop matrix and a negative-cycle
//     flag, all freshly allocated and owned by the caller.
//   - Weights are signed int64. Negative edges are fine; a negative cycle is a
//     reported outcome (Result.NegativeCycle), never an error.
//
// When to use:
//
//   - Static routing tables, reachability and transitive-closure analysis, any
//     workload that asks for many (source, target) queries on one dense graph.
//   - For a single source on a sparse graph prefer Dijkstra or Bellman–Ford.
//
// Key properties:
//
//   - Deterministic: k → i → j loop order, strict-improvement rule, fixed edge
//     ingestion order. Running Compute twice yields identical matrices.
//   - Sentinel-safe: unreachable distances are matrix.Unreachable and missing
//     hops are matrix.NoHop; they never enter arithmetic.
//   - Overflow-safe: sums of two finite distances are checked and a wrapping sum
//     is skipped as "not an improvement".
//   - Last edge wins: a repeated (u, v) pair keeps the weight of the later edge.
//   - Parallel: WithWorkers(w) relaxes the rows of each pivot on w goroutines
//     with a barrier between pivots; the output does not depend on w.
//   - Cancellable: WithContext is checked before every pivot.
//
// Performance and complexity:
//
//   - Time:  O(n³ + E)
//   - Space: O(n²) for the matrices, O(n) scratch.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidVertexCount: n < 0.
//   - ErrEdgeOutOfRange:     an endpoint outside [0, n); nothing is allocated.
//   - ErrOptionViolation:    e.g. WithWorkers(0).
//   - ErrVertexOutOfRange:   path or distance query outside the matrix.
//   - ErrPathLoop:           reconstruction exceeded n hops (negative cycle).
//   - ErrNoSuchEdge:         PathWeight met a hop that is not an edge.
//
// Negative cycles:
//
//	Once Result.NegativeCycle is true, distances and hops of vertices touched
//	by the cycle are unreliable: the pass is bounded to n pivots, so entries
//	may hold an arbitrary finite-looking value. Only the flag (and
//	NegativeCycleVertices) should be trusted.
//
// API reference:
//
//	func Compute(n int, edges []Edge, opts ...Option) (*Result, error)
//	func ReconstructPath(next *matrix.NextMatrix, i, j int) ([]int, error)
//	func PathWeight(edges []Edge, path []int) (matrix.Distance, error)
//
// Thread safety:
//
//   - Compute is a pure function of its inputs; concurrent calls are safe.
//   - A Result is not synchronized; share it read-only or guard it externally.
package floydwarshall
