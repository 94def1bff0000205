package dfs

import "github.com/katalvlaran/spantree/core"

// FindCycle searches the undirected graph g for a cycle and returns one as a
// closed vertex sequence [v0, v1, …, vk, v0], or (nil, false) if g is a forest.
//
// Graphs built by core never hold self-loops or parallel edges, so the only
// edge to skip while expanding v is the one leading back to v's parent; any
// other edge to a Gray vertex closes a cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]int, bool) {
	if g == nil {
		return nil, false
	}

	n := g.NumVertices()
	state := make([]int, n)
	parent := make([]int, n)
	for v := range parent {
		parent[v] = NoParent
	}

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		nbs, _ := g.Neighbors(root)
		stack := []frame{{v: root, nbs: nbs}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbs) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			u, nb := top.v, top.nbs[top.next].To
			top.next++

			switch state[nb] {
			case White:
				state[nb] = Gray
				parent[nb] = u
				next, _ := g.Neighbors(nb)
				stack = append(stack, frame{v: nb, nbs: next, depth: top.depth + 1})
			case Gray:
				if nb == parent[u] {
					continue // the tree edge we arrived by
				}

				return closeCycle(parent, u, nb), true
			}
		}
	}

	return nil, false
}

// HasCycle reports whether the undirected graph g contains a cycle.
func HasCycle(g *core.Graph) bool {
	_, ok := FindCycle(g)

	return ok
}

// closeCycle walks parent links from u up to ancestor and returns the closed
// cycle [ancestor, …, u, ancestor].
func closeCycle(parent []int, u, ancestor int) []int {
	var rev []int
	for v := u; v != ancestor; v = parent[v] {
		rev = append(rev, v)
	}
	cycle := make([]int, 0, len(rev)+2)
	cycle = append(cycle, ancestor)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, ancestor)
}
