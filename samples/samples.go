// Package samples holds the fixed graphs the mst command and the tests share.
package samples

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// Names of the built-in samples accepted by Load.
const (
	NameMatrix8   = "matrix8"
	NameLabelled8 = "labelled8"
)

// Matrix8 returns a fresh copy of the 8-vertex adjacency matrix. Its minimum
// spanning tree weighs 22.
func Matrix8() [][]int64 {
	return [][]int64{
		{0, 7, 1, 9, 0, 0, 0, 0},
		{7, 0, 0, 0, 2, 4, 0, 0},
		{1, 0, 0, 0, 3, 0, 1, 0},
		{9, 0, 0, 0, 0, 5, 5, 0},
		{0, 2, 3, 0, 0, 0, 0, 6},
		{0, 4, 0, 5, 0, 0, 0, 6},
		{0, 0, 1, 5, 0, 0, 0, 6},
		{0, 0, 0, 0, 6, 6, 6, 0},
	}
}

// Labelled8 returns the labelled source/sink network: vertex names s, v1..v6, t
// and its edge list. The pair {v1, v3} is listed twice; NewGraph keeps the first.
func Labelled8() (names []string, edges []core.Edge) {
	names = []string{"s", "v1", "v2", "v3", "v4", "v5", "v6", "t"}
	edges = []core.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 2, To: 4, Weight: 1},
		{From: 3, To: 5, Weight: 1},
		{From: 4, To: 5, Weight: 1},
		{From: 4, To: 6, Weight: 1},
		{From: 5, To: 7, Weight: 1},
		{From: 6, To: 7, Weight: 1},
	}

	return names, edges
}

// ErrUnknownSample indicates a name Load does not recognise.
var ErrUnknownSample = errors.New("samples: unknown sample")

// Load builds the named sample graph. Labels are nil for unlabelled samples.
func Load(name string) (g *core.Graph, labels []string, err error) {
	switch name {
	case NameMatrix8:
		g, err = core.FromMatrix(Matrix8())
	case NameLabelled8:
		var edges []core.Edge
		labels, edges = Labelled8()
		g, err = core.NewGraph(len(labels), edges)
	default:
		return nil, nil, fmt.Errorf("Load(%q): %w", name, ErrUnknownSample)
	}
	if err != nil {
		return nil, nil, err
	}

	return g, labels, nil
}

// Names lists the sample names in sorted order.
func Names() []string {
	names := []string{NameMatrix8, NameLabelled8}
	sort.Strings(names)

	return names
}
