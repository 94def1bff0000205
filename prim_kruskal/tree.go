package prim_kruskal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spantree/core"
)

// SpanningTree accumulates the edges a planner accepts and their total weight.
//
// It is a passive accumulator: AddEdge appends without checking anything, and
// all correctness (no cycles, eventual spanning) is the planner's job. Planners
// seal the tree before handing it out; a sealed tree is read-only and any
// further AddEdge/AddWeight call panics.
type SpanningTree struct {
	edges  []core.Edge // accepted edges, in acceptance order
	total  int64       // running sum maintained by AddWeight
	sealed bool        // set once the tree is returned by a planner
}

// NewSpanningTree returns an empty tree with room for capacity edges.
// A negative capacity is treated as 0.
func NewSpanningTree(capacity int) *SpanningTree {
	if capacity < 0 {
		capacity = 0
	}

	return &SpanningTree{edges: make([]core.Edge, 0, capacity)}
}

// AddEdge appends the edge (from, to, weight) unconditionally.
// It does not touch the total; see AddWeight.
func (t *SpanningTree) AddEdge(from, to int, weight int64) {
	t.mustBeOpen("AddEdge")
	t.edges = append(t.edges, core.Edge{From: from, To: to, Weight: weight})
}

// AddWeight adds weight to the running total.
func (t *SpanningTree) AddWeight(weight int64) {
	t.mustBeOpen("AddWeight")
	t.total += weight
}

// Edges returns a copy of the accepted edges in acceptance order.
func (t *SpanningTree) Edges() []core.Edge {
	out := make([]core.Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// TotalWeight returns the accumulated weight.
func (t *SpanningTree) TotalWeight() int64 {
	return t.total
}

// Len returns the number of accepted edges.
func (t *SpanningTree) Len() int {
	return len(t.edges)
}

// Sealed reports whether the tree has been frozen by a planner.
func (t *SpanningTree) Sealed() bool {
	return t.sealed
}

// Graph returns the tree as a core.Graph over n vertices, so traversal code
// can run on the tree alone.
func (t *SpanningTree) Graph(n int) (*core.Graph, error) {
	return core.NewGraph(n, t.edges)
}

// String renders the total followed by the edge list, e.g.
// "total=3 edges=[(0,1,1) (1,2,2)]".
func (t *SpanningTree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%d edges=[", t.total)
	for i, e := range t.edges {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')

	return b.String()
}

// accept records e as a tree edge: AddEdge followed by AddWeight.
func (t *SpanningTree) accept(e core.Edge) {
	t.AddEdge(e.From, e.To, e.Weight)
	t.AddWeight(e.Weight)
}

// seal freezes t and returns it.
func (t *SpanningTree) seal() *SpanningTree {
	t.sealed = true

	return t
}

func (t *SpanningTree) mustBeOpen(method string) {
	if t.sealed {
		panic("prim_kruskal: " + method + " on a sealed SpanningTree")
	}
}
