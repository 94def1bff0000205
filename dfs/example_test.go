package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dfs"
)

// ExampleComponents splits a graph with an isolated vertex into its components.
func ExampleComponents() {
	g, _ := core.NewGraph(5, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	})
	fmt.Println(dfs.Components(g))
	// Output: [[0 1 2] [3 4]]
}

// ExampleFindCycle reports the cycle closed by the edge {3, 1}.
func ExampleFindCycle() {
	g, _ := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 1, Weight: 1},
	})
	cycle, ok := dfs.FindCycle(g)
	fmt.Println(ok, cycle)
	// Output: true [1 2 3 1]
}
