// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying correct topology, counts,
// determinism, and default weights.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dfs"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int                               // expected number of vertices
		wantE       int                               // expected number of edges
		sampleCheck func(t *testing.T, g *core.Graph) // additional topology-specific checks
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					w, ok := g.Weight(i, (i+1)%5)
					assert.True(t, ok, "edge %d-%d", i, (i+1)%5)
					assert.Equal(t, builder.DefaultEdgeWeight, w)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []core.Edge{
					{From: 0, To: 1, Weight: 1},
					{From: 1, To: 2, Weight: 1},
					{From: 2, To: 3, Weight: 1},
				}, g.Edges())
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				for leaf := 1; leaf < 5; leaf++ {
					assert.Equal(t, 1, g.Degree(leaf))
				}
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(4), "hub touches every rim vertex")
				assert.True(t, g.HasEdge(3, 0), "rim closes")
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 5; v++ {
					assert.Equal(t, 4, g.Degree(v))
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1), "no edge inside the left side")
				assert.False(t, g.HasEdge(2, 3), "no edge inside the right side")
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1), "right neighbour")
				assert.True(t, g.HasEdge(0, 4), "bottom neighbour")
				assert.False(t, g.HasEdge(3, 4), "row wrap is not an edge")
			},
		},
		{
			name: "Grid(1,1)", ctor: builder.Grid(1, 1), wantV: 1, wantE: 0,
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NumVertices())
			assert.Equal(t, tc.wantE, g.NumEdges())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks that every constructor surfaces its sentinel.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", nil, builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", nil, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomConnected(no rng)", nil, builder.RandomConnected(4, 1), builder.ErrNeedRandSource},
		{"RandomConnected(extra<0)", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(4, -1), builder.ErrTooFewVertices},
		{"RandomConnected(too dense)", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(4, 4), builder.ErrConstructFailed},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.bopts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuildGraph_NoConstructors(t *testing.T) {
	_, err := builder.BuildGraph(nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestBuildGraph_Overlay composes two constructors on the same indices; the
// first emitted edge for a pair keeps its weight.
func TestBuildGraph_Overlay(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithConstantWeight(5)},
		builder.Path(4),
		builder.Cycle(4),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, int64(20), g.TotalWeight())
}

func TestRandomConnected_IsConnected(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 50)},
			builder.RandomConnected(30, 40),
		)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 69, g.NumEdges(), "seed %d", seed)
		assert.True(t, dfs.Connected(g), "seed %d", seed)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(1))
			assert.LessOrEqual(t, e.Weight, int64(50))
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(0, 9)},
			builder.RandomSparse(20, 0.3),
		)
		require.NoError(t, err)

		return g
	}
	assert.Equal(t, build().Edges(), build().Edges())
}
