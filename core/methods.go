// File: methods.go
// Role: read-only queries over a constructed Graph.
// Every accessor returns copies; callers can never reach the internal slices.

package core

import "fmt"

// NumVertices returns the vertex count n; vertices are 0..n-1.
func (g *Graph) NumVertices() int {
	return g.n
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Edges returns every undirected edge exactly once, in enumeration order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether v is in [0, NumVertices).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// Neighbors returns the adjacency list of v sorted by neighbour index.
// Returns ErrVertexNotFound if v is out of range.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Adjacent, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]Adjacent, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of edges incident to v, or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adjacency[v])
}

// Weight returns the weight of edge {u, v} and whether that edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (int64, bool) {
	i, ok := g.index[makePair(u, v)]
	if !ok {
		return 0, false
	}

	return g.edges[i].Weight, true
}

// HasEdge reports whether the undirected edge {u, v} exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.index[makePair(u, v)]

	return ok
}

// Matrix renders the graph as a symmetric n×n adjacency matrix.
// Zero-weight edges are indistinguishable from NoEdge in this form.
// Complexity: O(V² + E).
func (g *Graph) Matrix() [][]int64 {
	m := make([][]int64, g.n)
	for i := range m {
		m[i] = make([]int64, g.n)
	}
	for _, e := range g.edges {
		m[e.From][e.To] = e.Weight
		m[e.To][e.From] = e.Weight
	}

	return m
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	var sum int64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}
