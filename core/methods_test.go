package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

func TestNeighbors_SortedAndCopied(t *testing.T) {
	g, err := core.NewGraph(4, []core.Edge{
		{From: 2, To: 3, Weight: 7},
		{From: 2, To: 0, Weight: 1},
		{From: 1, To: 2, Weight: 4},
	})
	require.NoError(t, err)

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	want := []core.Adjacent{
		{To: 0, Weight: 1, Edge: 1},
		{To: 1, Weight: 4, Edge: 2},
		{To: 3, Weight: 7, Edge: 0},
	}
	if diff := cmp.Diff(want, nbs); diff != "" {
		t.Errorf("Neighbors(2) mismatch (-want +got):\n%s", diff)
	}

	// Mutating the returned slice must not leak into the graph.
	nbs[0].Weight = 100
	again, _ := g.Neighbors(2)
	assert.EqualValues(t, 1, again[0].Weight)
	assert.Equal(t, 3, g.Degree(2))
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2, nil)
	require.NoError(t, err)

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Zero(t, g.Degree(5))
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 3}})
	require.NoError(t, err)

	es := g.Edges()
	es[0].Weight = 42
	assert.EqualValues(t, 3, g.Edges()[0].Weight)
}

func TestMatrixRoundTrip(t *testing.T) {
	g, err := core.FromMatrix(square4)
	require.NoError(t, err)

	if diff := cmp.Diff(square4, g.Matrix()); diff != "" {
		t.Errorf("Matrix() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(1, 3))
	assert.EqualValues(t, 15, g.TotalWeight())
}

func TestEdgeHelpers(t *testing.T) {
	e := core.Edge{From: 4, To: 9, Weight: 2}
	assert.Equal(t, "(4,9,2)", e.String())
	assert.Equal(t, 9, e.Other(4))
	assert.Equal(t, 4, e.Other(9))
}
