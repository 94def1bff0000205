package main

import (
	"github.com/katalvlaran/spantree/graphio"
	"github.com/katalvlaran/spantree/samples"
)

type sampleCmd struct {
	Name string `arg:"" enum:"matrix8,labelled8" help:"Sample to print (${enum})."`
}

func (s *sampleCmd) Run(g *globals) error {
	graph, labels, err := samples.Load(s.Name)
	if err != nil {
		return err
	}

	return graphio.EncodeDocument(g.stdout, graphio.NewDocument(graph, labels))
}
