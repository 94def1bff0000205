package prim_kruskal_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle 0—1 (1), 1—2 (2), 0—2 (4).
// The MST is {0—1, 1—2} with total weight 3.
func ExampleKruskal() {
	// 1. Construct the graph from an edge list.
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Run Kruskal's algorithm.
	tree, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the edges in acceptance order.
	fmt.Println(tree)
	// Output: total=3 edges=[(0,1,1) (1,2,2)]
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon given as an adjacency matrix:
// 0—1 (1), 1—2 (2), 2—3 (3), 3—4 (5), 0—4 (12). The MST drops the 0—4 edge.
func ExamplePrim() {
	g, err := core.FromMatrix([][]int64{
		{0, 1, 0, 0, 12},
		{1, 0, 2, 0, 0},
		{0, 2, 0, 3, 0},
		{0, 0, 3, 0, 5},
		{12, 0, 0, 5, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree, err := prim_kruskal.Prim(g, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", tree.TotalWeight())
	for i, e := range tree.Edges() {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 4-3 3-2 2-1 1-0
}

// ExampleCompute selects the heap-based Prim through options and checks the result.
func ExampleCompute() {
	g, _ := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 0, Weight: 3},
	})

	tree, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrimHeap),
		prim_kruskal.WithRoot(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree, prim_kruskal.Verify(g, tree))
	// Output: total=6 edges=[(2,1,1) (2,3,2) (3,0,3)] <nil>
}

// ExampleCompute_disconnected shows that no partial tree is returned.
func ExampleCompute_disconnected() {
	g, _ := core.NewGraph(3, []core.Edge{{From: 0, To: 1, Weight: 1}})

	tree, err := prim_kruskal.Compute(g)
	fmt.Println(tree == nil, errors.Is(err, prim_kruskal.ErrDisconnected))
	fmt.Println(err)
	// Output:
	// true true
	// Kruskal: accepted 1 of 2 edges: prim_kruskal: graph is disconnected
}
