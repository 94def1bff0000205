package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/spantree/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000) // pre‐build graph once
	b.ResetTimer()                      // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkKruskalParentMap runs the rebuild-per-query cycle check on a small graph.
func BenchmarkKruskalParentMap(b *testing.B) {
	g := buildMediumGraph(b, 60, 240)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Compute(g, prim_kruskal.WithCycleCheck(prim_kruskal.CycleCheckParentMap))
	}
}

// BenchmarkPrim measures the cut-scan Prim on the same graph, starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, 0)
	}
}

// BenchmarkPrimHeap measures the heap-driven Prim on the same graph.
func BenchmarkPrimHeap(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.PrimHeap(g, 0)
	}
}
