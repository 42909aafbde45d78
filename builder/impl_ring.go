// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_ring.go — Ring(n, fanout): each vertex i links to i+1 … i+fanout (mod n).
//
// Contract:
//   • n ≥ 2 and 1 ≤ fanout < n (else ErrTooFewVertices).
//   • Emission order: i ascending, then offset ascending.
//   • Strongly connected; a standard dense-ish benchmark fixture.
//
// Complexity: O(n*fanout) time, O(1) extra space.

package builder

import "fmt"

const (
	methodRing   = "Ring"
	minRingNodes = 2
	minFanout    = 1
)

// Ring returns a Constructor that builds a circulant digraph.
func Ring(n, fanout int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		if fanout < minFanout || fanout >= n {
			return fmt.Errorf("%s: fanout=%d not in [%d,%d): %w", methodRing, fanout, minFanout, n, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for d := 1; d <= fanout; d++ {
				s.add(i, (i+d)%n, cfg.weight())
			}
		}

		return nil
	}
}
