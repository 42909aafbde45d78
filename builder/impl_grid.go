// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighbour lattice, both directions.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r, c) has index r*cols + c (row-major).
//   • For each cell in row-major order: right neighbour (both directions),
//     then down neighbour (both directions).
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols bidirectional grid.
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		s.grow(rows * cols)

		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = r*cols + c
				if c+1 < cols {
					s.add(u, u+1, cfg.weight())
					s.add(u+1, u, cfg.weight())
				}
				if r+1 < rows {
					s.add(u, u+cols, cfg.weight())
					s.add(u+cols, u, cfg.weight())
				}
			}
		}

		return nil
	}
}
