// Package dfs implements iterative depth-first search over a core.Graph.
//
// Traversal uses an explicit stack, so recursion depth never grows with the
// graph; a path graph of a million vertices is walked as safely as a triangle.
// Neighbours are explored in ascending index order, which makes every result
// deterministic.
//
// Key features:
//   - DFS(g, start, opts...): single-source or full-forest traversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - MaxDepth limiting
//   - Components, Connected and FindCycle helpers for undirected graphs
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the stack and per-vertex metadata.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is out of range in single-source mode.
//   - any error returned by OnVisit or OnExit, wrapped with the vertex.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	v     int             // vertex being expanded
	next  int             // index of the next neighbour to inspect
	depth int             // distance from the root
	nbs   []core.Adjacent // cached adjacency of v
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on g starting from start. With
// WithFullTraversal it covers all components and start is ignored.
// On a hook error the partial Result is returned together with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start.
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("dfs: start %d with n=%d: %w", start, g.NumVertices(), ErrStartVertexNotFound)
	}

	// 4. Initialize result.
	n := g.NumVertices()
	res := &Result{
		Preorder: make([]int, 0, n),
		Order:    make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
		Visited:  make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = NoParent
	}
	w := &walker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree.
	if !dopts.FullTraversal {
		return res, w.traverse(start)
	}
	for v := 0; v < n; v++ {
		if !res.Visited[v] {
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse explores the tree rooted at root.
func (w *walker) traverse(root int) error {
	if err := w.discover(root, NoParent, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Descend into the next undiscovered neighbour, if any.
		if top.next < len(top.nbs) {
			nb := top.nbs[top.next].To
			top.next++
			if w.res.Visited[nb] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			if err := w.discover(nb, top.v, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// All neighbours done: finish the vertex.
		v := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}

// discover marks v as visited and pushes it on the stack.
func (w *walker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Preorder = append(w.res.Preorder, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// Vertex is in range, so Neighbors cannot fail here.
	nbs, _ := w.graph.Neighbors(v)
	w.stack = append(w.stack, frame{v: v, depth: depth, nbs: nbs})

	return nil
}
