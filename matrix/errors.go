// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)); callers match them with errors.Is.
// No operation panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates that a flat slice does not hold n*n values,
	// or that two matrices of different order were combined.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
