// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices 0..n-1; edges (i, i+1) for i=0..n-2, then the closing edge (n-1, 0).
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

// Cycle returns a Constructor that builds a ring C_n.
func Cycle(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		s.grow(n)
		for i := 0; i < n; i++ {
			// (n-1)→0 closes the ring.
			s.add(i, (i+1)%n, cfg.weight())
		}

		return nil
	}
}
