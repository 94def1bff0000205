package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/katalvlaran/spantree/core"
)

// PrimHeap computes the same Minimum Spanning Tree as Prim, edge for edge,
// using an indexed min-heap of crossing arcs instead of a full cut scan.
//
// Every undirected edge {u, v} yields two arcs, u→v and v→u. Arcs are ranked
// once by (weight, from, to); that order is exactly the order in which Prim's
// ascending scan prefers crossing edges, so the lowest-ranked arc that still
// leaves the tree is always Prim's pick. The heap is keyed by arc rank: each
// arc is inserted at most once (when its tail joins the tree) and never
// re-keyed. Arcs whose head joined the tree in the meantime are discarded
// when popped.
//
// Error Conditions: identical to Prim.
//
// Steps:
//  1. Validate: graph != nil, root in range.
//  2. Rank all 2|E| arcs by (weight, from, to) and group them by tail.
//  3. Insert root into the tree set and push its outgoing arcs.
//  4. Until the tree has |V|-1 edges:
//     a. Empty heap → ErrDisconnected.
//     b. Pop the lowest-ranked arc; skip it if its head is already in the tree.
//     c. Accept the arc, add its head to the tree set, push the head's arcs
//     towards vertices outside the tree.
//
// Complexity: O(E log E) time, O(V + E) memory.
func PrimHeap(graph *core.Graph, root int) (*SpanningTree, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.NumVertices()
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("PrimHeap: root %d with n=%d: %w (%w)", root, n, ErrInvalidRoot, core.ErrVertexNotFound)
	}

	// 2. Rank arcs; rank r is both the heap element and its cost.
	arcs := rankedArcs(graph)
	out := make([][]int, n)
	for r, a := range arcs {
		out[a.From] = append(out[a.From], r)
	}

	var (
		inTree   = sparsesets.New(n)
		frontier = yagh.New[int](len(arcs))
		tree     = NewSpanningTree(n - 1)
	)

	// push offers every arc leaving the new tree vertex u.
	push := func(u int) {
		for _, r := range out[u] {
			if !inTree.Contains(arcs[r].To) {
				frontier.Put(r, r)
			}
		}
	}

	// 3. Start from root.
	inTree.Insert(root)
	push(root)

	// 4. Grow one vertex per accepted arc.
	for tree.Len() < n-1 {
		// 4a. Nothing left to reach: the graph is disconnected from root.
		if frontier.Size() == 0 {
			return nil, fmt.Errorf("PrimHeap: no edge leaves the %d vertices reached from %d (n=%d): %w",
				tree.Len()+1, root, n, ErrDisconnected)
		}

		// 4b. Lazy deletion of arcs that became internal.
		a := arcs[frontier.Pop().Elem]
		if inTree.Contains(a.To) {
			continue
		}

		// 4c. Accept and extend the frontier.
		inTree.Insert(a.To)
		tree.accept(a)
		push(a.To)
	}

	return tree.seal(), nil
}

// rankedArcs returns both orientations of every edge sorted by (weight, from, to).
// The order is total: a Graph holds each vertex pair once.
func rankedArcs(graph *core.Graph) []core.Edge {
	edges := graph.Edges()
	arcs := make([]core.Edge, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, e, core.Edge{From: e.To, To: e.From, Weight: e.Weight})
	}
	sort.Slice(arcs, func(i, j int) bool {
		a, b := arcs[i], arcs[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	return arcs
}
