// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the center; leaves 1..n-1 are connected to it in increasing order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

// centerVertex is the hub index used by Star.
const centerVertex = 0

// Star returns a Constructor that builds a star S_n centered at vertex 0.
func Star(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		s.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			s.add(centerVertex, leaf, cfg.weight())
		}

		return nil
	}
}
