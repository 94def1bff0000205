// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is 0..n1-1, right side is n1..n1+n2-1.
//   - Emits (l, r) for every left l ascending, then every right r ascending.
//
// Complexity:
//   - Time: O(n1·n2).
//   - Space: O(1) extra.

package builder

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		s.grow(n1 + n2)
		for l := 0; l < n1; l++ {
			for r := n1; r < n1+n2; r++ {
				s.add(l, r, cfg.weight())
			}
		}

		return nil
	}
}
