// Package apsp is an all-pairs shortest path toolkit for weighted directed
// graphs: a Floyd–Warshall engine with path reconstruction and negative-cycle
// detection, plus the pieces around it.
//
// What is in the box?
//
//	floydwarshall/ — Compute, ReconstructPath, PathWeight; parallel and cancellable
//	matrix/        — Distance and Hop value types, dense generic matrices
//	builder/       — deterministic edge-list generators (path, ring, random DAG…)
//	graphio/       — YAML, TOML and plain-text graph files
//	render/        — terminal tables and the plain three-block layout
//	cmd/apsp/      — the command-line front end (solve, path, demo, gen)
//
// Quick example:
//
//	res, err := floydwarshall.Compute(3, []floydwarshall.Edge{
//		{From: 0, To: 1, Weight: 4},
//		{From: 1, To: 2, Weight: -1},
//	})
//	if err != nil {
//		return err
//	}
//	path, _ := res.Path(0, 2) // [0 1 2]
//	d, _ := res.Distance(0, 2) // 3
//
// Vertices are dense integers in [0, n). Unreachable pairs carry
// matrix.Unreachable ("INF"), missing hops matrix.NoHop ("N/A").
//
//	go get github.com/katalvlaran/apsp
package apsp
