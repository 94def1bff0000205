package dfs

import "github.com/katalvlaran/spantree/core"

// Components partitions the vertices of g into connected components.
// Components are ordered by their smallest vertex, and each component lists
// its vertices in discovery order starting from that smallest vertex.
// A nil graph yields nil.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}

	// Full traversal discovers each tree contiguously; a vertex without a
	// parent opens the next component.
	res, _ := DFS(g, 0, WithFullTraversal())
	var comps [][]int
	for _, v := range res.Preorder {
		if res.Parent[v] == NoParent {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], v)
	}

	return comps
}

// Connected reports whether every vertex of g is reachable from vertex 0.
// A nil graph is not connected.
func Connected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	res, err := DFS(g, 0)
	if err != nil {
		return false
	}

	return res.Count() == g.NumVertices()
}

// Reachable reports whether to is reachable from from in g.
// Out-of-range vertices are never reachable.
func Reachable(g *core.Graph, from, to int) bool {
	if g == nil || !g.HasVertex(to) {
		return false
	}
	res, err := DFS(g, from)
	if err != nil {
		return false
	}

	return res.Visited[to]
}
