// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_complete.go — Complete(n): every ordered pair (i, j), i ≠ j.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). n == 1 yields no edges.
//   • Emission order: i ascending, then j ascending.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					s.add(i, j, cfg.weight())
				}
			}
		}

		return nil
	}
}
