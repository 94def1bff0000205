package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/graphio"
)

// shapes maps generate's shape argument onto a builder constructor.
var shapes = map[string]func(c *generateCmd) builder.Constructor{
	"path":             func(c *generateCmd) builder.Constructor { return builder.Path(c.N) },
	"cycle":            func(c *generateCmd) builder.Constructor { return builder.Cycle(c.N) },
	"star":             func(c *generateCmd) builder.Constructor { return builder.Star(c.N) },
	"wheel":            func(c *generateCmd) builder.Constructor { return builder.Wheel(c.N) },
	"complete":         func(c *generateCmd) builder.Constructor { return builder.Complete(c.N) },
	"bipartite":        func(c *generateCmd) builder.Constructor { return builder.CompleteBipartite(c.Rows, c.Cols) },
	"grid":             func(c *generateCmd) builder.Constructor { return builder.Grid(c.Rows, c.Cols) },
	"random-sparse":    func(c *generateCmd) builder.Constructor { return builder.RandomSparse(c.N, c.P) },
	"random-connected": func(c *generateCmd) builder.Constructor { return builder.RandomConnected(c.N, c.Extra) },
}

type generateCmd struct {
	Shape     string  `arg:"" enum:"path,cycle,star,wheel,complete,bipartite,grid,random-sparse,random-connected" help:"Topology (${enum})."`
	N         int     `short:"n" default:"8" help:"Vertex count."`
	Rows      int     `default:"3" help:"Grid rows, or left side of bipartite."`
	Cols      int     `default:"3" help:"Grid columns, or right side of bipartite."`
	P         float64 `short:"p" default:"0.3" help:"Edge probability for random-sparse."`
	Extra     int     `default:"0" help:"Edges beyond the spanning backbone for random-connected."`
	Seed      int64   `short:"s" default:"1" help:"Random seed."`
	MinWeight int64   `name:"min-weight" default:"1" help:"Smallest edge weight."`
	MaxWeight int64   `name:"max-weight" default:"1" help:"Largest edge weight."`
}

func (c *generateCmd) Run(g *globals) error {
	if c.MinWeight < 0 || c.MaxWeight < c.MinWeight {
		return fmt.Errorf("generate: need 0 <= min-weight <= max-weight, got %d and %d", c.MinWeight, c.MaxWeight)
	}
	ctor, ok := shapes[c.Shape]
	if !ok {
		return fmt.Errorf("generate: unknown shape %q", c.Shape)
	}

	graph, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(c.Seed),
			builder.WithUniformWeight(c.MinWeight, c.MaxWeight),
		},
		ctor(c),
	)
	if err != nil {
		return err
	}
	g.logger.Debug("Graph generated",
		slog.String("shape", c.Shape),
		slog.Int("vertices", graph.NumVertices()),
		slog.Int("edges", graph.NumEdges()))

	return graphio.EncodeGraph(g.stdout, graph)
}

