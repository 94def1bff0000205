// Package core provides the immutable Graph that every spantree algorithm
// consumes.
//
// A Graph G = (V, E) has dense integer vertices V = {0, …, n-1} and a set of
// undirected, non-negatively weighted edges. It is built once, validated once,
// and then only read:
//
//   - NewGraph(n, edges)  – explicit edge list; input order is kept and a
//     repeated pair keeps its first occurrence.
//   - FromMatrix(m)       – square adjacency matrix, 0 meaning "no edge";
//     edges are enumerated over the upper triangle (i < j) row by row.
//
// Invariants of every constructed Graph:
//
//   - NumVertices() ≥ 1.
//   - No self-loops, no negative weights, no duplicate pairs.
//   - Edges() lists every undirected edge exactly once, in enumeration order.
//   - Neighbors(v) is sorted by neighbour index.
//
// Because nothing mutates a Graph after construction, it needs no locks and
// may be shared by any number of goroutines.
//
// Errors:
//
//	ErrMalformedGraph      – non-square or empty matrix, vertex count < 1,
//	                         non-zero diagonal, self-loop, negative weight,
//	                         asymmetric weights.
//	ErrInvalidEdgeEndpoint – edge endpoint outside [0, n).
//	ErrVertexNotFound      – query on a vertex outside [0, n).
//
// Query methods:
//
//	NumVertices() int                   // O(1)
//	NumEdges() int                      // O(1)
//	Edges() []Edge                      // O(E), copy
//	Neighbors(v int) ([]Adjacent, error) // O(deg v), copy
//	Weight(u, v int) (int64, bool)      // O(1)
//	HasEdge(u, v int) bool              // O(1)
//	Matrix() [][]int64                  // O(V²)
package core
