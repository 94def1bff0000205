// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Emits every pair (i, j) with i < j in row-major order.
//
// Complexity:
//   - Time: O(n²).
//   - Space: O(1) extra.

package builder

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}
