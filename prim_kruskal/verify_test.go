package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// handTree assembles an unsealed tree from raw edges, summing their weights.
func handTree(edges ...core.Edge) *prim_kruskal.SpanningTree {
	tree := prim_kruskal.NewSpanningTree(len(edges))
	for _, e := range edges {
		tree.AddEdge(e.From, e.To, e.Weight)
		tree.AddWeight(e.Weight)
	}

	return tree
}

func TestVerify_AcceptsPlannerOutput(t *testing.T) {
	g := matrix8(t)
	for name, opts := range planners() {
		tree, err := prim_kruskal.Compute(g, opts...)
		require.NoError(t, err, name)
		assert.NoError(t, prim_kruskal.Verify(g, tree), name)
	}
}

func TestVerify_Rejects(t *testing.T) {
	g := buildTriangle(t) // 0—1 (1), 1—2 (2), 0—2 (3)

	cases := []struct {
		name string
		tree *prim_kruskal.SpanningTree
		msg  string
	}{
		{
			name: "TooFewEdges",
			tree: handTree(core.Edge{From: 0, To: 1, Weight: 1}),
			msg:  "tree has 1 edges, want 2",
		},
		{
			name: "EdgeNotInGraph",
			tree: handTree(core.Edge{From: 0, To: 1, Weight: 1}, core.Edge{From: 2, To: 5, Weight: 2}),
			msg:  "not in graph",
		},
		{
			name: "WrongWeight",
			tree: handTree(core.Edge{From: 0, To: 1, Weight: 1}, core.Edge{From: 2, To: 1, Weight: 7}),
			msg:  "has graph weight 2",
		},
		{
			name: "RepeatedEdge",
			tree: handTree(core.Edge{From: 0, To: 1, Weight: 1}, core.Edge{From: 1, To: 0, Weight: 1}),
			msg:  "closes a cycle",
		},
		{
			name: "NotMinimal",
			tree: handTree(core.Edge{From: 0, To: 2, Weight: 3}, core.Edge{From: 1, To: 2, Weight: 2}),
			msg:  "lighter than tree path maximum 3",
		},
		{
			name: "NilTree",
			tree: nil,
			msg:  "tree is nil",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := prim_kruskal.Verify(g, tc.tree)
			assert.ErrorIs(t, err, prim_kruskal.ErrInvalidTree)
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestVerify_TotalMismatch(t *testing.T) {
	g := buildTriangle(t)
	tree := handTree(core.Edge{From: 0, To: 1, Weight: 1}, core.Edge{From: 1, To: 2, Weight: 2})
	tree.AddWeight(1)

	err := prim_kruskal.Verify(g, tree)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidTree)
	assert.ErrorContains(t, err, "sum to 3, total is 4")
}

func TestVerify_NilGraph(t *testing.T) {
	assert.ErrorIs(t, prim_kruskal.Verify(nil, handTree()), prim_kruskal.ErrInvalidGraph)
}

func TestVerify_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1, nil)
	require.NoError(t, err)
	assert.NoError(t, prim_kruskal.Verify(g, handTree()))
}
