// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_random_regular.go — RandomRegular(n, d): every vertex gets exactly d
// distinct out-neighbours chosen at random.
//
// Canonical model:
//   • For each vertex u (ascending) shuffle the other n-1 vertices with
//     cfg.rng and keep the first d. Out-degree is exactly d, in-degree varies.
//   • No self-loops, no parallel arcs.
//
// Contract:
//   • n ≥ 2 and 0 ≤ d < n (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Emission order: u asc, then neighbours in ascending vertex order, so the
//     edge list does not depend on shuffle positions, only on the chosen set.
//
// Complexity:
//   • Time: O(n²) for the per-vertex shuffles.
//   • Space: O(n) scratch.

package builder

import (
	"fmt"
	"sort"
)

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 2
)

// RandomRegular returns a Constructor that builds a random d-out-regular digraph.
func RandomRegular(n, d int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if err := requireRand(methodRandomRegular, cfg); err != nil {
			return err
		}
		s.grow(n)

		others := make([]int, 0, n-1)
		for u := 0; u < n; u++ {
			others = others[:0]
			for v := 0; v < n; v++ {
				if v != u {
					others = append(others, v)
				}
			}
			cfg.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

			chosen := others[:d]
			sort.Ints(chosen)
			for _, v := range chosen {
				s.add(u, v, cfg.weight())
			}
		}

		return nil
	}
}
