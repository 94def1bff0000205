// Package prim_kruskal computes Minimum Spanning Trees (MST) of undirected,
// integer-weighted *core.Graph values with Kruskal's and Prim's algorithms.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     of |V|-1 edges that connects all vertices in V with the smallest possible total weight.
//
//   - Why MST matters:
//
//   - Network Design: cheapest wiring of sites, pipes or roads.
//
//   - Clustering: cutting the k-1 heaviest MST edges yields k clusters.
//
//   - Subroutines: approximation algorithms (metric TSP, Steiner trees) start from an MST.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (*SpanningTree, error)
//
//   - Strategy: stable sort of all edges by weight, then accept every edge whose endpoints
//     lie in different components of a disjoint-set union (see package dsu).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root int) (*SpanningTree, error)
//
//   - Strategy: grow one tree from root; each step scans the cut and takes the lightest
//     crossing edge.
//
//   - Complexity: O(V·(V + E)) time, O(V + E) space.
//
//   - PrimHeap(g *core.Graph, root int) (*SpanningTree, error)
//
//   - Strategy: same choices as Prim, driven by an indexed min-heap of arcs ranked by (weight, from, to).
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Compute(g *core.Graph, opts ...Option) (*SpanningTree, error)
//     dispatches on MSTOptions (WithMethod, WithRoot, WithCycleCheck).
//
//   - Verify(g *core.Graph, t *SpanningTree) error
//     checks size, membership, total, spanning and the cycle property.
//
// Determinism
//
//   - core.Graph enumerates edges as (u < v) in row-major order and keeps ascending adjacency lists.
//   - Kruskal sorts stably, so equal weights keep enumeration order.
//   - Prim takes the first strictly lighter edge of its ascending scan; PrimHeap breaks ties
//     on (visited endpoint, new vertex) and therefore returns the same edges in the same order.
//   - The Kruskal cycle checks (union-find, traversal, parent-map) decide identically.
//
// Error Conditions
//
//	- ErrInvalidGraph      : graph is nil.
//	- ErrInvalidRoot       : Prim root outside [0, |V|); also matches core.ErrVertexNotFound.
//	- ErrDisconnected      : no spanning tree exists; no partial tree is returned.
//	- ErrUnknownMethod     : Compute received an unknown Method.
//	- ErrUnknownCycleCheck : Compute received an unknown CycleCheck.
//	- ErrInvalidTree       : Verify rejected a tree.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
