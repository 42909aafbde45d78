// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2): every left vertex points at
// every right vertex.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition is 0..n1-1, right partition is n1..n1+n2-1.
//   • Only left→right arcs are emitted, so the result is acyclic and any
//     weight range (negative included) is free of negative cycles.
//   • Emission order: i asc over left, inner j asc over right.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the directed K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, minPartitionSize); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, minPartitionSize); err != nil {
			return err
		}
		s.grow(n1 + n2)

		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				s.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}
