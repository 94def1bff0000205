package samples_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/samples"
)

func TestMatrix8_FreshCopy(t *testing.T) {
	m := samples.Matrix8()
	m[0][1] = 100
	assert.Equal(t, int64(7), samples.Matrix8()[0][1])
}

func TestLoad(t *testing.T) {
	g, labels, err := samples.Load(samples.NameMatrix8)
	require.NoError(t, err)
	assert.Nil(t, labels)
	assert.Equal(t, 8, g.NumVertices())
	assert.Equal(t, 12, g.NumEdges())

	g, labels, err = samples.Load(samples.NameLabelled8)
	require.NoError(t, err)
	assert.Equal(t, "t", labels[7])
	assert.Equal(t, 10, g.NumEdges()) // duplicate {v1,v3} dropped

	_, _, err = samples.Load("nope")
	assert.ErrorIs(t, err, samples.ErrUnknownSample)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"labelled8", "matrix8"}, samples.Names())
}
