// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// Constructor emits vertices and edges into the sink using the resolved
// builderConfig. Constructors MUST validate parameters before emitting and
// emit edges in a stable, documented order.
type Constructor func(s *sink, cfg builderConfig) error

// Build resolves bopts and applies all constructors in order. It returns the
// vertex count (largest order requested by any constructor) and the edges in
// emission order. Constructor errors are wrapped with "Build: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func Build(bopts []Option, cons ...Constructor) (int, []floydwarshall.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sink{}

	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return 0, nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s.n, s.edges, nil
}
