// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 0..n-1; edges (i-1, i) for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		s.grow(n)
		// Emit path edges 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			s.add(i-1, i, cfg.weight())
		}

		return nil
	}
}
