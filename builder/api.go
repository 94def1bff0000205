// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order, then
//     hands the collected edge list to core.NewGraph exactly once.
//   - All public factories are declared in impl_*.go; each one documents its vertex layout.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors share one index space: Path(4) and Cycle(4) in one call overlay
//     the same vertices 0..3; the first edge emitted for a pair wins.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Constructor emits vertices and edges into a sink using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Address vertices by index starting at 0.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *sink, cfg builderConfig) error

// sink collects the output of every constructor passed to BuildGraph.
type sink struct {
	n     int         // vertex count: highest index touched + 1
	edges []core.Edge // edges in emission order
}

// grow makes vertices 0..n-1 part of the graph.
func (s *sink) grow(n int) {
	if n > s.n {
		s.n = n
	}
}

// add emits the edge {u, v} with weight w.
func (s *sink) add(u, v int, w int64) {
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: w})
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and builds an immutable core.Graph from the result.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor, plus core.NewGraph.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrTooFewVertices if no constructor produced a vertex.
//   - ErrConstructFailed for a nil constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Resolve deterministic builder configuration from functional options (O(len(bopts))).
	cfg := newBuilderConfig(bopts...)
	s := &sink{}

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if s.n < 1 {
		return nil, fmt.Errorf("BuildGraph: no constructor produced a vertex: %w", ErrTooFewVertices)
	}

	// Constructors only emit in-range, loop-free, non-negative edges; core re-validates anyway.
	g, err := core.NewGraph(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
