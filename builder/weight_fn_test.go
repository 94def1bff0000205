// Package builder_test contains unit tests for the WeightFn implementations
// and the weight options, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spantree/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors and options panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() { builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
		{"WithConstantWeight_negative", func() { builder.WithConstantWeight(-3) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tc.fn)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))

	uniform := builder.UniformWeightFn(3, 6)
	assert.Equal(t, builder.DefaultEdgeWeight, uniform(nil), "nil rng falls back")
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(6))
		seen[w] = true
	}
	assert.Len(t, seen, 4, "both bounds are reachable")

	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rng))
	assert.GreaterOrEqual(t, builder.UniformWeightFn(0, math.MaxInt64)(rng), int64(0))

	for i := 0; i < 100; i++ {
		w := builder.From1To100WeightFn(rng)
		assert.True(t, w >= 1 && w <= 100, "got %d", w)
	}
}
