// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_star.go — Star(n): hub 0 with spokes to leaves 1..n-1 in both directions.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • For each leaf ascending: emit 0→leaf, then leaf→0 (two weight draws).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor that builds a bidirectional star centred on vertex 0.
func Star(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			s.add(starCenter, leaf, cfg.weight())
			s.add(leaf, starCenter, cfg.weight())
		}

		return nil
	}
}
