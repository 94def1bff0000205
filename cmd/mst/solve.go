package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/spantree/graphio"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

type solveCmd struct {
	File       string `arg:"" optional:"" help:"Graph document (YAML or JSON); stdin when omitted or '-'."`
	Algorithm  string `short:"a" enum:"kruskal,prim,prim-heap" default:"kruskal" help:"Algorithm (${enum})."`
	Root       int    `short:"r" default:"0" help:"Start vertex for Prim."`
	CycleCheck string `name:"cycle-check" enum:"union-find,traversal,parent-map" default:"union-find" help:"Kruskal cycle check (${enum})."`
	Format     string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format (${enum})."`
	Verify     bool   `help:"Check the result with the cycle property before printing it."`
}

func (s *solveCmd) Run(g *globals) error {
	in, closeIn, err := openInput(s.File, g.stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := graphio.ReadDocument(in)
	if err != nil {
		return err
	}
	graph, err := doc.Graph()
	if err != nil {
		return err
	}
	g.logger.Debug("Graph loaded",
		slog.String("source", inputName(s.File)),
		slog.Int("vertices", graph.NumVertices()),
		slog.Int("edges", graph.NumEdges()))

	start := time.Now()
	tree, err := prim_kruskal.Compute(graph,
		prim_kruskal.WithMethod(s.Algorithm),
		prim_kruskal.WithRoot(s.Root),
		prim_kruskal.WithCycleCheck(s.CycleCheck),
	)
	if err != nil {
		return err
	}
	g.logger.Info("Spanning tree computed",
		slog.String("algorithm", s.Algorithm),
		slog.Int64("total", tree.TotalWeight()),
		slog.Int("edges", tree.Len()),
		slog.Duration("elapsed", time.Since(start)))

	if s.Verify {
		if err := prim_kruskal.Verify(graph, tree); err != nil {
			return err
		}
		g.logger.Debug("Spanning tree verified")
	}

	return graphio.WriteTree(g.stdout, tree, s.Format, doc.Labels)
}

// openInput opens name, or returns stdin for "" and "-".
func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open graph: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}

	return name
}
