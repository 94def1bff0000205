// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, extra) constructor.
//
// Canonical model:
//   - A random recursive tree (vertex i attaches to a uniform vertex in [0, i)) guarantees
//     connectivity; then `extra` further distinct pairs are sampled uniformly.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); extra ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - extra must fit: n-1+extra ≤ n(n-1)/2 (else ErrConstructFailed).
//   - Rejection sampling gives up after maxAttemptsPerEdge·(extra+1) draws (ErrConstructFailed).
//
// Complexity:
//   - Time: O(n + extra) expected for sparse requests.
//   - Space: O(n + extra) for the pair set.

package builder

import "fmt"

// RandomConnected returns a Constructor that samples a connected graph with
// n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if err := validateMin(MethodRandomConnected, n, MinRandomNodes); err != nil {
			return err
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", MethodRandomConnected, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
		}
		if maxExtra := n*(n-1)/2 - (n - 1); extra > maxExtra {
			return fmt.Errorf("%s: extra=%d exceeds %d free pairs for n=%d: %w",
				MethodRandomConnected, extra, maxExtra, n, ErrConstructFailed)
		}

		type key struct{ lo, hi int }
		used := make(map[key]struct{}, n-1+extra)
		mark := func(u, v int) bool {
			if u > v {
				u, v = v, u
			}
			k := key{u, v}
			if _, dup := used[k]; dup {
				return false
			}
			used[k] = struct{}{}

			return true
		}

		// 1) Spanning backbone.
		s.grow(n)
		for i := 1; i < n; i++ {
			parent := cfg.rng.Intn(i)
			mark(parent, i)
			s.add(parent, i, cfg.weight())
		}

		// 2) Extra pairs by rejection sampling.
		budget := maxAttemptsPerEdge * (extra + 1)
		for added := 0; added < extra; {
			if budget == 0 {
				return fmt.Errorf("%s: gave up after placing %d of %d extra edges: %w",
					MethodRandomConnected, added, extra, ErrConstructFailed)
			}
			budget--
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || !mark(u, v) {
				continue
			}
			s.add(u, v, cfg.weight())
			added++
		}

		return nil
	}
}
