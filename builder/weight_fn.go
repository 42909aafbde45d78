// Package builder provides helper functions and types
// for configuring edge-weight distributions in constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed.
// Complexity: O(1).
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if max < min. If rng is nil it yields min, keeping the fallback
// deterministic.
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1 // width of the closed interval

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		if span <= 0 {
			// [min,max] covers more than int64 can count; draw raw bits.
			for {
				if v := int64(rng.Uint64()); v >= min && v <= max {
					return v
				}
			}
		}

		return min + rng.Int63n(span)
	}
}
