package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/dsu"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New(5)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Sets())
	for v := 0; v < 5; v++ {
		assert.Equal(t, v, d.Find(v))
		assert.Zero(t, d.Rank(v))
	}

	empty := dsu.New(-2)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Sets())
}

func TestUnion_MergesOnce(t *testing.T) {
	d := dsu.New(4)

	assert.True(t, d.Union(0, 1))
	assert.False(t, d.Union(1, 0), "second union of the same pair is a no-op")
	assert.True(t, d.Connected(0, 1))
	assert.False(t, d.Connected(0, 2))
	assert.Equal(t, 3, d.Sets())
}

func TestUnion_ByRank(t *testing.T) {
	d := dsu.New(6)

	// Equal ranks: the first argument's root survives and gains a rank.
	require.True(t, d.Union(0, 1))
	assert.Equal(t, 0, d.Find(1))
	assert.Equal(t, 1, d.Rank(0))

	// Rank 0 {2} joins rank 1 {0,1}: the higher-rank root survives unchanged.
	require.True(t, d.Union(2, 0))
	assert.Equal(t, 0, d.Find(2))
	assert.Equal(t, 1, d.Rank(2))

	// Two rank-1 trees: rank grows to 2.
	require.True(t, d.Union(3, 4))
	require.True(t, d.Union(4, 1))
	assert.Equal(t, 2, d.Rank(3))
	assert.Equal(t, 2, d.Sets())
}

func TestFind_PathCompression(t *testing.T) {
	d := dsu.New(8)
	// Build a deep-ish tree by repeatedly merging equal-rank trees.
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(0, 2)
	d.Union(4, 5)
	d.Union(6, 7)
	d.Union(4, 6)
	d.Union(0, 4)

	root := d.Find(7)
	// After compression every element resolves to the root in one hop, which
	// we observe as stable, identical representatives.
	for v := 0; v < 8; v++ {
		assert.Equal(t, root, d.Find(v))
	}
	assert.Equal(t, 1, d.Sets())
	assert.Equal(t, 3, d.Rank(0))
}

// TestConsistency_Random checks Find against a naive component labelling
// after a random sequence of unions.
func TestConsistency_Random(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	d := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 150; step++ {
		u, v := r.Intn(n), r.Intn(n)
		merged := d.Union(u, v)
		assert.Equal(t, label[u] != label[v], merged)
		if lu, lv := label[u], label[v]; lu != lv {
			for i := range label {
				if label[i] == lv {
					label[i] = lu
				}
			}
		}
	}

	labels := make(map[int]struct{})
	for u := 0; u < n; u++ {
		labels[label[u]] = struct{}{}
		for v := 0; v < n; v += 13 {
			assert.Equal(t, label[u] == label[v], d.Connected(u, v), "u=%d v=%d", u, v)
		}
	}
	assert.Equal(t, len(labels), d.Sets())
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 14
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}
