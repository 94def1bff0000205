// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the outer cycle on 0..n-2 using Cycle(n-1) with the same cfg semantics.
//   • The hub is vertex n-1; spokes are emitted hub→rim in increasing rim order.
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import "fmt"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		// Build the outer cycle of size (n-1) using the same (s, cfg).
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		hub := n - 1
		s.grow(n)
		for rim := 0; rim < hub; rim++ {
			s.add(hub, rim, cfg.weight())
		}

		return nil
	}
}
