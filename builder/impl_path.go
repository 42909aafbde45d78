// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_path.go — Path(n): directed chain 0→1→…→n-1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i→i+1 for i ascending; weights from cfg.weightFn.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path on n vertices.
func Path(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i+1 < n; i++ {
			s.add(i, i+1, cfg.weight())
		}

		return nil
	}
}
