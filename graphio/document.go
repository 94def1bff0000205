package graphio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
)

// ErrBadDocument indicates a graph document that cannot describe a graph.
var ErrBadDocument = errors.New("graphio: bad graph document")

// edgeArity is the length of one [from, to, weight] entry.
const edgeArity = 3

// Rows is a list of integer rows. It renders each row in flow style so edge
// lists and matrices stay one entry per line.
type Rows [][]int64

// MarshalYAML emits a block sequence of flow sequences.
func (r Rows) MarshalYAML() (interface{}, error) {
	outer := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range r {
		inner := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, x := range row {
			inner.Content = append(inner.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.FormatInt(x, 10),
			})
		}
		outer.Content = append(outer.Content, inner)
	}

	return outer, nil
}

// Document is the on-disk form of a graph.
type Document struct {
	Vertices int      `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    Rows     `yaml:"edges,omitempty" json:"edges,omitempty"`
	Matrix   Rows     `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	Strict   bool     `yaml:"strict,omitempty" json:"strict,omitempty"`
	Labels   []string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// ReadDocument parses one document from r. Unknown keys are rejected.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadDocument: empty input: %w", ErrBadDocument)
		}

		return nil, fmt.Errorf("ReadDocument: %v: %w", err, ErrBadDocument)
	}

	return &doc, nil
}

// Graph validates d and builds the core.Graph it describes.
// Structural problems wrap ErrBadDocument; graph invariant violations keep
// the core sentinel (ErrMalformedGraph, ErrInvalidEdgeEndpoint).
func (d *Document) Graph() (*core.Graph, error) {
	if len(d.Edges) > 0 && len(d.Matrix) > 0 {
		return nil, fmt.Errorf("Graph: both edges and matrix given: %w", ErrBadDocument)
	}

	var opts []core.GraphOption
	if d.Strict {
		opts = append(opts, core.WithStrictSymmetry())
	}

	var (
		g   *core.Graph
		err error
	)
	if len(d.Matrix) > 0 {
		if d.Vertices != 0 && d.Vertices != len(d.Matrix) {
			return nil, fmt.Errorf("Graph: vertices=%d but matrix has %d rows: %w",
				d.Vertices, len(d.Matrix), ErrBadDocument)
		}
		g, err = core.FromMatrix(d.Matrix, opts...)
	} else {
		if d.Vertices < 1 {
			return nil, fmt.Errorf("Graph: vertices=%d, need at least 1: %w", d.Vertices, ErrBadDocument)
		}
		edges := make([]core.Edge, len(d.Edges))
		for i, row := range d.Edges {
			if len(row) != edgeArity {
				return nil, fmt.Errorf("Graph: edge #%d has %d fields, want [from, to, weight]: %w",
					i, len(row), ErrBadDocument)
			}
			edges[i] = core.Edge{From: int(row[0]), To: int(row[1]), Weight: row[2]}
		}
		g, err = core.NewGraph(d.Vertices, edges, opts...)
	}
	if err != nil {
		return nil, err
	}

	if len(d.Labels) > 0 && len(d.Labels) != g.NumVertices() {
		return nil, fmt.Errorf("Graph: %d labels for %d vertices: %w", len(d.Labels), g.NumVertices(), ErrBadDocument)
	}

	return g, nil
}

// Decode reads a document from r and builds its graph.
func Decode(r io.Reader) (*core.Graph, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// NewDocument describes g as an edge-list document.
func NewDocument(g *core.Graph, labels []string) *Document {
	edges := g.Edges()
	doc := &Document{
		Vertices: g.NumVertices(),
		Edges:    make(Rows, len(edges)),
		Labels:   labels,
	}
	for i, e := range edges {
		doc.Edges[i] = []int64{int64(e.From), int64(e.To), e.Weight}
	}

	return doc
}

// EncodeGraph writes g to w as a YAML edge-list document that Decode reads back.
func EncodeGraph(w io.Writer, g *core.Graph) error {
	return EncodeDocument(w, NewDocument(g, nil))
}

// EncodeDocument writes d to w as YAML.
func EncodeDocument(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("EncodeDocument: %w", err)
	}

	return enc.Close()
}
