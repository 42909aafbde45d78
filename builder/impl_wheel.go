// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_wheel.go — Wheel(n): directed cycle over n-1 rim vertices plus a hub.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, the hub being the last vertex (n-1).
//   • n ≥ 4 so the rim is a proper cycle of at least 3 vertices.
//
// Contract:
//   • Emits the rim via Cycle(n-1), then for every rim vertex i ascending the
//     spokes hub→i and i→hub (both directions, so the hub is a shortcut).
//   • Weights: one draw per emitted arc in emission order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel Wₙ with hub n-1.
func Wheel(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		s.grow(n)

		hub := n - 1
		for i := 0; i < hub; i++ {
			s.add(hub, i, cfg.weight())
			s.add(i, hub, cfg.weight())
		}

		return nil
	}
}
