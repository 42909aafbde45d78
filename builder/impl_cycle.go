// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_cycle.go — Cycle(n): directed ring 0→1→…→n-1→0.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); a directed 2-cycle is a valid ring.
//   • Emits edges i→(i+1)%n in ascending i.
//   • With a negative constant weight this is the canonical negative cycle.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds an n-vertex directed cycle.
func Cycle(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			s.add(i, (i+1)%n, cfg.weight())
		}

		return nil
	}
}
