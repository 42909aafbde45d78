// Package builder generates deterministic edge lists over dense vertices
// [0, n) for the all-pairs shortest path engine.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(bopts, cons...): resolves options, runs constructors in order and
//     returns (n, edges). Constructors overlay onto one vertex range; n is the
//     largest order any constructor requested.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols),
//     Ring(n, fanout).
//     – CompleteBipartite(n1, n2): left→right arcs only (acyclic).
//     – RandomRegular(n, d): exactly d random out-neighbours per vertex.
//     – RandomSparse(n, p): each ordered pair i≠j independently with probability p.
//     – RandomDAG(n, p): like RandomSparse but only i<j, so negative weights
//     never close a cycle.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed value (may be negative).
//     – UniformWeightFn:   uniform on the closed interval [min, max].
//   - Options: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical edges
//     in identical order.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Documented complexity per constructor.
package builder
