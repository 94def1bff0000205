package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set union with path compression and union by rank as its cycle check.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if fewer than |V|-1 edges were accepted after every edge was examined.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Enumerate all undirected edges once via graph.Edges().
//  3. Sort edges by ascending Weight (sort.SliceStable keeps enumeration order for equal weights).
//  4. Initialize one DSU sized to |V| (never to |E|).
//  5. For each edge (u,v): if find(u) != find(v), accept it and union(u,v); otherwise reject it.
//  6. Examine every edge (no early exit); if fewer than |V|-1 were accepted → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*SpanningTree, error) {
	return kruskal(graph, newUnionFindCheck)
}

// kruskal runs Kruskal's loop with the cycle check produced by newCheck.
// Every cycleCheck makes the same accept/reject decisions, so the result does
// not depend on which one is used.
func kruskal(graph *core.Graph, newCheck func(n int) cycleCheck) (*SpanningTree, error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.NumVertices()

	// 2. Collect all edges; core already guarantees no self-loops and no duplicates.
	edges := graph.Edges()

	// 3. Stable sort by weight: ties keep enumeration order, so reruns are byte-identical.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. One connectivity oracle per run, sized to the vertex count.
	check := newCheck(n)
	tree := NewSpanningTree(n - 1)

	// 5. Accept every edge that joins two different components.
	for _, e := range edges {
		if check.connected(e.From, e.To) {
			// Both endpoints already share a component: this edge closes a cycle.
			continue
		}
		tree.accept(e)
		check.join(e.From, e.To)
	}

	// 6. A spanning tree over n vertices has exactly n-1 edges.
	if tree.Len() < n-1 {
		return nil, fmt.Errorf("Kruskal: accepted %d of %d edges: %w", tree.Len(), n-1, ErrDisconnected)
	}

	return tree.seal(), nil
}
