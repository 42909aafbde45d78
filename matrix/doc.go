// Package matrix provides the value types and dense containers used by the
// all-pairs shortest path engine.
//
// The package provides:
//
//   - Distance: a tagged int64 that is either a finite path weight or
//     Unreachable. Unreachable never takes part in arithmetic; Distance.Add is
//     the single summation path and refuses sums that would wrap.
//   - Hop: a tagged vertex index used by next-hop matrices, with NoHop as the
//     "none" value.
//   - Dense[T]: a square, row-major matrix backed by one flat slice. The two
//     instantiations used across the module are DistanceMatrix and NextMatrix.
//
// Matrices are cheap to index (O(1) At/Set) and cost O(n²) memory. Public
// indexers return ErrOutOfRange instead of panicking; hot loops inside the
// module read the backing slice through Raw.
//
// Rendering tokens INF and N/A are exposed as InfToken and NoneToken so every
// presentation layer prints sentinels the same way.
package matrix
