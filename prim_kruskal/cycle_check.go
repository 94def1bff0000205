package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dfs"
	"github.com/katalvlaran/spantree/dsu"
)

// cycleCheck answers Kruskal's one question: would edge {u, v} close a cycle
// in the forest accepted so far?
type cycleCheck interface {
	// connected reports whether u and v already share a component.
	connected(u, v int) bool

	// join records that the edge {u, v} was accepted.
	join(u, v int)
}

// cycleCheckFactory maps a CycleCheck name to its constructor.
func cycleCheckFactory(name string) (func(n int) cycleCheck, error) {
	switch name {
	case CycleCheckUnionFind:
		return newUnionFindCheck, nil
	case CycleCheckTraversal:
		return newTraversalCheck, nil
	case CycleCheckParentMap:
		return newParentMapCheck, nil
	default:
		return nil, fmt.Errorf("Compute: %q: %w", name, ErrUnknownCycleCheck)
	}
}

// unionFindCheck is the production strategy: O(α(V)) per query.
type unionFindCheck struct {
	sets *dsu.DisjointSetUnion
}

func newUnionFindCheck(n int) cycleCheck {
	return &unionFindCheck{sets: dsu.New(n)}
}

func (c *unionFindCheck) connected(u, v int) bool { return c.sets.Connected(u, v) }
func (c *unionFindCheck) join(u, v int)           { c.sets.Union(u, v) }

// traversalCheck re-derives connectivity by walking the accepted forest with
// DFS on every query: O(V + accepted) per query, quadratic overall.
type traversalCheck struct {
	n        int
	accepted []core.Edge
}

func newTraversalCheck(n int) cycleCheck {
	return &traversalCheck{n: n}
}

func (c *traversalCheck) connected(u, v int) bool {
	// The accepted edges come from a valid graph, so construction cannot fail.
	forest, err := core.NewGraph(c.n, c.accepted)
	if err != nil {
		return false
	}

	return dfs.Reachable(forest, u, v)
}

func (c *traversalCheck) join(u, v int) {
	c.accepted = append(c.accepted, core.Edge{From: u, To: v})
}

// parentMapCheck rebuilds a parent map from scratch over the accepted edges
// on every query and compares the roots of u and v. No ranks, no path
// compression: O(accepted · depth) per query.
type parentMapCheck struct {
	accepted []core.Edge
}

func newParentMapCheck(int) cycleCheck {
	return &parentMapCheck{}
}

func (c *parentMapCheck) connected(u, v int) bool {
	parent := make(map[int]int, 2*len(c.accepted))
	root := func(x int) int {
		for {
			p, ok := parent[x]
			if !ok {
				return x
			}
			x = p
		}
	}
	for _, e := range c.accepted {
		if ru, rv := root(e.From), root(e.To); ru != rv {
			parent[ru] = rv
		}
	}

	return root(u) == root(v)
}

func (c *parentMapCheck) join(u, v int) {
	c.accepted = append(c.accepted, core.Edge{From: u, To: v})
}
