// Package core defines the immutable, index-addressed Graph consumed by the
// spanning tree planners, together with its Edge type and sentinel errors.
//
// This file declares Edge, Adjacent, Graph, GraphOption and the errors
// returned by the constructors in api.go.
//
// Errors:
//
//	ErrMalformedGraph      - representation invariant violated (non-square matrix,
//	                         vertex count < 1, asymmetric weights, self-loop, negative weight).
//	ErrInvalidEdgeEndpoint - an edge references a vertex outside [0, n).
//	ErrVertexNotFound      - a query referenced a vertex outside [0, n).
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrMalformedGraph indicates the input violates a representation invariant.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrInvalidEdgeEndpoint indicates an edge endpoint outside [0, NumVertices).
	ErrInvalidEdgeEndpoint = errors.New("core: edge endpoint out of range")

	// ErrVertexNotFound indicates a query for a vertex outside [0, NumVertices).
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// NoEdge is the adjacency-matrix value meaning "no edge between i and j".
const NoEdge int64 = 0

// MaxVertices is the largest vertex count a Graph accepts.
const MaxVertices = 1 << 24

// Edge is an undirected, weighted connection between two vertices.
//
// (u, v, w) and (v, u, w) describe the same edge; a Graph stores each
// undirected pair once, in the orientation it was first given.
type Edge struct {
	// From is one endpoint, an index in [0, NumVertices).
	From int

	// To is the other endpoint, an index in [0, NumVertices).
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// String renders the edge as "(from,to,weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.From, e.To, e.Weight)
}

// Other returns the endpoint of e opposite to v.
// The result is undefined when v is neither e.From nor e.To.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Adjacent is one entry in a vertex's adjacency list.
type Adjacent struct {
	// To is the neighbouring vertex.
	To int

	// Weight is the weight of the connecting edge.
	Weight int64

	// Edge is the position of the connecting edge in Graph.Edges().
	Edge int
}

// GraphOption configures how NewGraph and FromMatrix validate their input.
type GraphOption func(*graphConfig)

// graphConfig holds construction-time knobs. It never outlives construction.
type graphConfig struct {
	// strictSymmetry rejects any matrix with m[i][j] != m[j][i].
	strictSymmetry bool
}

// WithStrictSymmetry makes FromMatrix reject a pair given in only one
// direction. Without it, a pair present on one side of the diagonal is read
// as an undirected edge, and a pair present on both sides must agree.
func WithStrictSymmetry() GraphOption {
	return func(c *graphConfig) { c.strictSymmetry = true }
}

// Graph is an immutable, undirected, weighted graph over the vertices
// 0..n-1.
//
// Once built, a Graph is never mutated, so it may be shared freely between
// goroutines and planner invocations.
type Graph struct {
	n int // vertex count, ≥ 1

	// edges holds every undirected pair once, in enumeration order.
	edges []Edge

	// adjacency[v] lists the neighbours of v sorted by Adjacent.To.
	adjacency [][]Adjacent

	// index maps a canonical (min,max) pair to its position in edges.
	index map[pair]int
}

// pair is the canonical key of an undirected vertex pair (lo < hi).
type pair struct {
	lo, hi int
}

// makePair orders u and v into a canonical pair key.
func makePair(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{lo: u, hi: v}
}
