// Package bfs provides a breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, Unreached otherwise
//   - Parent, ParentWeight: the BFS tree edge that reached each vertex
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth limit.
//
// Why
//
//   - Rooting a spanning tree: Parent, Depth and ParentWeight give the tree paths
//     that prim_kruskal.Verify walks for the cycle-property check.
//   - Reachable subgraphs and level layering in O(V + E).
//
// Determinism
//
//	core.Graph keeps neighbour lists sorted by index and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
