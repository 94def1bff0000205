package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
)

// ExampleBFS walks a small tree level by level and rebuilds one path.
func ExampleBFS() {
	g, _ := core.NewGraph(5, []core.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 4},
		{From: 3, To: 4, Weight: 2},
	})
	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(4)
	fmt.Println("order:", res.Order)
	fmt.Println("depth:", res.Depth)
	fmt.Println("path to 4:", path)
	// Output:
	// order: [0 1 2 3 4]
	// depth: [0 1 1 2 3]
	// path to 4: [0 2 3 4]
}
