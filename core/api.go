// File: api.go
// Role: Graph constructors: NewGraph (edge list) and FromMatrix (adjacency matrix).
// Determinism:
//   - NewGraph keeps input order; FromMatrix enumerates the upper triangle row-major.
//   - A repeated vertex pair keeps its first occurrence.
// Validation happens here and only here; a constructed Graph is always well-formed.

package core

import (
	"fmt"
	"sort"
)

const (
	methodNewGraph   = "NewGraph"
	methodFromMatrix = "FromMatrix"
	minVertices      = 1
)

// NewGraph builds a Graph over n vertices from an explicit edge list.
//
// Each edge must satisfy 0 ≤ From, To < n, From != To and Weight ≥ 0.
// Edges are kept in input order; when the same undirected pair appears more
// than once (in either orientation) the first occurrence wins and later ones
// are dropped. GraphOption values only affect FromMatrix and are accepted here
// for signature symmetry.
//
// Errors:
//   - ErrMalformedGraph if n is outside [1, MaxVertices], an edge is a self-loop,
//     or a weight is negative.
//   - ErrInvalidEdgeEndpoint if an endpoint lies outside [0, n).
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	// 1) Resolve options (kept for a uniform constructor surface).
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Vertex count must describe a non-empty vertex set.
	if n < minVertices {
		return nil, fmt.Errorf("%s: vertex count %d < %d: %w", methodNewGraph, n, minVertices, ErrMalformedGraph)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%s: vertex count %d > %d: %w", methodNewGraph, n, MaxVertices, ErrMalformedGraph)
	}

	// 3) Validate every edge and drop repeated pairs.
	kept := make([]Edge, 0, len(edges))
	seen := make(map[pair]struct{}, len(edges))
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%s: edge #%d %s with n=%d: %w", methodNewGraph, i, e, n, ErrInvalidEdgeEndpoint)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%s: edge #%d %s is a self-loop: %w", methodNewGraph, i, e, ErrMalformedGraph)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%s: edge #%d %s has negative weight: %w", methodNewGraph, i, e, ErrMalformedGraph)
		}
		key := makePair(e.From, e.To)
		if _, dup := seen[key]; dup {
			continue // first inserted wins
		}
		seen[key] = struct{}{}
		kept = append(kept, e)
	}

	return build(n, kept), nil
}

// FromMatrix builds a Graph from a square adjacency matrix where m[i][j] is
// the weight of edge {i, j} and NoEdge (0) means absent.
//
// The diagonal must be zero and weights non-negative. An entry given on both
// sides of the diagonal must agree; with WithStrictSymmetry the matrix must be
// fully symmetric. Edges are enumerated over i < j in row-major order, so the
// resulting Edges() order is (0,1), (0,2), ..., (1,2), ...
//
// Errors:
//   - ErrMalformedGraph if m is empty or non-square, the diagonal is non-zero,
//     a weight is negative, or the weights are asymmetric.
//
// Complexity: O(V²) time, O(V + E) memory.
func FromMatrix(m [][]int64, opts ...GraphOption) (*Graph, error) {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Shape checks: at least one row, every row as long as the matrix.
	n := len(m)
	if n < minVertices {
		return nil, fmt.Errorf("%s: empty matrix: %w", methodFromMatrix, ErrMalformedGraph)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%s: %d rows > %d: %w", methodFromMatrix, n, MaxVertices, ErrMalformedGraph)
	}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				methodFromMatrix, i, len(row), n, ErrMalformedGraph)
		}
	}

	// 2) Entry checks and upper-triangle enumeration.
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		if m[i][i] != NoEdge {
			return nil, fmt.Errorf("%s: diagonal m[%d][%d]=%d is a self-loop: %w",
				methodFromMatrix, i, i, m[i][i], ErrMalformedGraph)
		}
		for j := i + 1; j < n; j++ {
			a, b := m[i][j], m[j][i]
			if a < 0 || b < 0 {
				return nil, fmt.Errorf("%s: negative weight at {%d,%d}: %w", methodFromMatrix, i, j, ErrMalformedGraph)
			}
			if a != b && (cfg.strictSymmetry || (a != NoEdge && b != NoEdge)) {
				return nil, fmt.Errorf("%s: m[%d][%d]=%d but m[%d][%d]=%d: %w",
					methodFromMatrix, i, j, a, j, i, b, ErrMalformedGraph)
			}
			w := a
			if w == NoEdge {
				w = b
			}
			if w == NoEdge {
				continue
			}
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}

	return build(n, edges), nil
}

// build indexes a validated, duplicate-free edge list.
func build(n int, edges []Edge) *Graph {
	g := &Graph{
		n:         n,
		edges:     edges,
		adjacency: make([][]Adjacent, n),
		index:     make(map[pair]int, len(edges)),
	}
	for i, e := range edges {
		g.index[makePair(e.From, e.To)] = i
		g.adjacency[e.From] = append(g.adjacency[e.From], Adjacent{To: e.To, Weight: e.Weight, Edge: i})
		g.adjacency[e.To] = append(g.adjacency[e.To], Adjacent{To: e.From, Weight: e.Weight, Edge: i})
	}
	// Neighbour lists are sorted so every scan over them is deterministic.
	for _, adj := range g.adjacency {
		sort.Slice(adj, func(a, b int) bool { return adj[a].To < adj[b].To })
	}

	return g
}
