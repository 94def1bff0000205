// Package spantree computes minimum spanning trees of small, undirected,
// integer-weighted graphs, and ships the tooling to build, load and check them.
//
// 🚀 What is spantree?
//
//	A deterministic MST toolkit that brings together:
//		• Core primitives: an immutable, index-based Graph built from edges or a matrix
//		• Disjoint sets: union by rank with path compression
//		• Traversals: BFS, DFS, components, cycle detection
//		• Minimum spanning trees: Kruskal (three cycle checks), Prim, heap-based Prim
//		• Verification: size, membership, spanning and cycle-property checks
//		• Builders: path, cycle, star, wheel, complete, bipartite, grid, random graphs
//		• I/O: YAML/JSON graph documents, text/JSON/YAML tree reports
//
// ✨ Why spantree?
//
//   - Reproducible – equal weights break ties the same way on every run
//   - Comparable – every planner returns the same SpanningTree type
//   - Checkable – Verify proves minimality instead of trusting the planner
//
// Packages:
//
//	core/         — immutable Graph, Edge and Adjacent types
//	dsu/          — disjoint-set union
//	bfs/, dfs/    — traversals over core.Graph
//	prim_kruskal/ — SpanningTree, Kruskal, Prim, PrimHeap, Compute, Verify
//	builder/      — deterministic graph constructors and weight functions
//	graphio/      — graph documents and tree reports
//	samples/      — fixture graphs
//	cmd/mst/      — command-line front end
//
// Quick ASCII example:
//
//	    0───1      weights: 0-1=1, 1-3=2
//	    │   │               0-2=4, 2-3=3
//	    2───3
//
//	Kruskal keeps 0-1, 1-3 and 2-3 for a total weight of 6.
//
//	go install github.com/katalvlaran/spantree/cmd/mst@latest
package spantree
