// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                         (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(DefaultEdgeWeight)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}

// sink collects the vertex range and the emitted edges of one Build call.
type sink struct {
	n     int
	edges []floydwarshall.Edge
}

// grow widens the vertex range to at least n.
func (s *sink) grow(n int) {
	if n > s.n {
		s.n = n
	}
}

// add appends u→v with weight w.
func (s *sink) add(u, v int, w int64) {
	s.edges = append(s.edges, floydwarshall.Edge{From: u, To: v, Weight: w})
}
