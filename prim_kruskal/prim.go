package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing a single tree outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrInvalidRoot  : if root is outside [0, |V|) (also matches core.ErrVertexNotFound).
//   - ErrDisconnected : if at some step no edge leaves the visited set.
//
// Steps:
//  1. Validate: graph != nil, root in range.
//  2. Mark root visited; all others unvisited.
//  3. Repeat |V|-1 times:
//     a. Scan visited vertices u in ascending order, and for each its unvisited
//     neighbours v in ascending order.
//     b. Keep the first crossing edge (u,v) of strictly smallest weight.
//     c. If none exists → ErrDisconnected; otherwise accept (u,v,w) and mark v visited.
//
// Tie-break: among equal minimum weights the edge with the smallest (u, v)
// wins, u being the visited endpoint. PrimHeap reproduces this exactly.
//
// Complexity: O(V·(V + E)) time, O(V + E) memory. Intended for small or dense graphs;
// PrimHeap is the O(E log E) alternative.
func Prim(graph *core.Graph, root int) (*SpanningTree, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.NumVertices()
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("Prim: root %d with n=%d: %w (%w)", root, n, ErrInvalidRoot, core.ErrVertexNotFound)
	}

	// Snapshot adjacency once; Neighbors returns copies.
	adj := adjacencyOf(graph)

	// 2. Only the root is visited initially.
	visited := make([]bool, n)
	visited[root] = true
	tree := NewSpanningTree(n - 1)

	// 3. Each step adds exactly one new vertex.
	for step := 1; step < n; step++ {
		var (
			best  core.Edge // lightest crossing edge so far
			found bool      // whether any crossing edge was seen
		)
		for u := 0; u < n; u++ {
			if !visited[u] {
				continue
			}
			for _, a := range adj[u] {
				if visited[a.To] {
					continue
				}
				// Strictly smaller only: the first edge met at the minimum weight wins.
				if !found || a.Weight < best.Weight {
					best = core.Edge{From: u, To: a.To, Weight: a.Weight}
					found = true
				}
			}
		}

		// 3c. No edge crosses the cut: the remaining vertices are unreachable from root.
		if !found {
			return nil, fmt.Errorf("Prim: no edge leaves the %d vertices reached from %d (n=%d): %w",
				step, root, n, ErrDisconnected)
		}
		visited[best.To] = true
		tree.accept(best)
	}

	return tree.seal(), nil
}

// adjacencyOf returns the sorted adjacency lists of every vertex.
func adjacencyOf(graph *core.Graph) [][]core.Adjacent {
	adj := make([][]core.Adjacent, graph.NumVertices())
	for v := range adj {
		// v is in range by construction.
		adj[v], _ = graph.Neighbors(v)
	}

	return adj
}
