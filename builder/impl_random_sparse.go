// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomDAG(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible ordered pair
//     independently with probability p.
//   - RandomSparse: all ordered pairs (i, j), i ≠ j.
//   - RandomDAG: only i < j, so the result is acyclic for any weights.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Trial order: i asc, j asc. Weight is drawn only for accepted pairs.

package builder

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomDAG         = "RandomDAG"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// vertices with independent edge probability p. Self-loops are never emitted.
func RandomSparse(n int, p float64) Constructor {
	return randomPairs(methodRandomSparse, n, p, false)
}

// RandomDAG returns a Constructor that samples a random acyclic digraph:
// only pairs i < j are considered.
func RandomDAG(n int, p float64) Constructor {
	return randomPairs(methodRandomDAG, n, p, true)
}

// randomPairs implements both random constructors.
func randomPairs(method string, n int, p float64, forwardOnly bool) Constructor {
	return func(s *sink, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(method, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(method, p); err != nil {
			return err
		}
		if p > probMin && p < probMax {
			if err := requireRand(method, cfg); err != nil {
				return err
			}
		}
		s.grow(n)

		// 2) Sample pairs in a stable order.
		var i, j int
		for i = 0; i < n; i++ {
			j = 0
			if forwardOnly {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if !accept(cfg, p) {
					continue
				}
				s.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}

// accept runs one Bernoulli trial. p ∈ {0,1} needs no RNG.
func accept(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
