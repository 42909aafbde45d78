// Package builder provides validation helpers shared by constructors.
//
// Each helper returns an error tagged with the constructor name and wrapping
// the matching sentinel when its precondition is violated.
package builder

import "fmt"

// validateMin ensures got ≥ min, else "<method>: <name>=<got> < min=<min>: ErrTooFewVertices".
//
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [probMin, probMax].
//
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// requireRand fails with ErrNeedRandSource when cfg carries no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
