package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dfs"
	"github.com/katalvlaran/spantree/dsu"
)

// Verify checks that tree is a minimum spanning tree of graph.
// Every failure wraps ErrInvalidTree; a nil graph yields ErrInvalidGraph.
//
// Steps:
//  1. tree has exactly |V|-1 edges.
//  2. Each tree edge exists in graph with the same weight, and no edge closes a cycle.
//  3. The edge weights sum to tree.TotalWeight().
//  4. The tree connects every vertex.
//  5. Cycle property: no non-tree edge is lighter than the heaviest tree edge
//     on the path between its endpoints.
//
// Complexity: O(V·E) for step 5, O(E·α(V)) for the rest.
func Verify(graph *core.Graph, tree *SpanningTree) error {
	if graph == nil {
		return ErrInvalidGraph
	}
	if tree == nil {
		return fmt.Errorf("Verify: tree is nil: %w", ErrInvalidTree)
	}
	n := graph.NumVertices()
	edges := tree.Edges()

	// 1. Size.
	if len(edges) != n-1 {
		return fmt.Errorf("Verify: tree has %d edges, want %d: %w", len(edges), n-1, ErrInvalidTree)
	}

	// 2. Membership and acyclicity.
	sets := dsu.New(n)
	var sum int64
	for i, e := range edges {
		w, ok := graph.Weight(e.From, e.To)
		if !ok {
			return fmt.Errorf("Verify: edge #%d %s not in graph: %w", i, e, ErrInvalidTree)
		}
		if w != e.Weight {
			return fmt.Errorf("Verify: edge #%d %s has graph weight %d: %w", i, e, w, ErrInvalidTree)
		}
		if !sets.Union(e.From, e.To) {
			return fmt.Errorf("Verify: edge #%d %s closes a cycle: %w", i, e, ErrInvalidTree)
		}
		sum += e.Weight
	}

	// 3. Total.
	if sum != tree.TotalWeight() {
		return fmt.Errorf("Verify: edge weights sum to %d, total is %d: %w", sum, tree.TotalWeight(), ErrInvalidTree)
	}

	// 4. Spanning.
	tg, err := tree.Graph(n)
	if err != nil {
		return fmt.Errorf("Verify: %v: %w", err, ErrInvalidTree)
	}
	if !dfs.Connected(tg) {
		return fmt.Errorf("Verify: tree does not span %d vertices: %w", n, ErrInvalidTree)
	}

	// 5. Minimality: compare every non-tree edge with its tree path maximum.
	return checkCycleProperty(graph, tg)
}

// checkCycleProperty roots tg at 0 with a BFS and, for every graph edge, climbs
// both endpoints to their common ancestor tracking the heaviest tree edge seen.
func checkCycleProperty(graph, tg *core.Graph) error {
	if tg.NumVertices() < 2 {
		return nil
	}
	res, err := bfs.BFS(tg, 0)
	if err != nil {
		return fmt.Errorf("Verify: %v: %w", err, ErrInvalidTree)
	}

	for _, e := range graph.Edges() {
		if tg.HasEdge(e.From, e.To) {
			continue
		}
		u, v := e.From, e.To
		var heaviest int64
		for u != v {
			// Always lift the deeper endpoint.
			if res.Depth[u] < res.Depth[v] {
				u, v = v, u
			}
			if w := res.ParentWeight[u]; w > heaviest {
				heaviest = w
			}
			u = res.Parent[u]
		}
		if e.Weight < heaviest {
			return fmt.Errorf("Verify: non-tree edge %s is lighter than tree path maximum %d: %w",
				e, heaviest, ErrInvalidTree)
		}
	}

	return nil
}
