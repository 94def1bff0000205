package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/prim_kruskal"
)

// ErrUnknownFormat indicates an output format WriteTree does not support.
var ErrUnknownFormat = errors.New("graphio: unknown output format")

// Output formats accepted by WriteTree.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// TreeEdge is one rendered tree edge.
type TreeEdge struct {
	From      int    `json:"from" yaml:"from"`
	To        int    `json:"to" yaml:"to"`
	Weight    int64  `json:"weight" yaml:"weight"`
	FromLabel string `json:"from_label,omitempty" yaml:"from_label,omitempty"`
	ToLabel   string `json:"to_label,omitempty" yaml:"to_label,omitempty"`
}

// TreeReport is the structured form of a spanning tree.
type TreeReport struct {
	Total int64      `json:"total" yaml:"total"`
	Edges []TreeEdge `json:"edges" yaml:"edges"`
}

// NewTreeReport converts tree, attaching labels when they cover every endpoint.
func NewTreeReport(tree *prim_kruskal.SpanningTree, labels []string) TreeReport {
	rep := TreeReport{Total: tree.TotalWeight(), Edges: make([]TreeEdge, 0, tree.Len())}
	for _, e := range tree.Edges() {
		te := TreeEdge{From: e.From, To: e.To, Weight: e.Weight}
		if e.From < len(labels) && e.To < len(labels) {
			te.FromLabel, te.ToLabel = labels[e.From], labels[e.To]
		}
		rep.Edges = append(rep.Edges, te)
	}

	return rep
}

// WriteTree renders tree to w in the given format.
//
//   - text: "total=W edges=[(u,v,w) ...]" on one line, using labels for endpoints if given.
//   - json: a TreeReport object, indented.
//   - yaml: a TreeReport document.
func WriteTree(w io.Writer, tree *prim_kruskal.SpanningTree, format string, labels []string) error {
	rep := NewTreeReport(tree, labels)

	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, rep.text())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("WriteTree: %q: %w", format, ErrUnknownFormat)
	}
}

func (r TreeReport) text() string {
	var b strings.Builder
	b.WriteString("total=")
	b.WriteString(strconv.FormatInt(r.Total, 10))
	b.WriteString(" edges=[")
	for i, e := range r.Edges {
		if i > 0 {
			b.WriteByte(' ')
		}
		from, to := strconv.Itoa(e.From), strconv.Itoa(e.To)
		if e.FromLabel != "" || e.ToLabel != "" {
			from, to = e.FromLabel, e.ToLabel
		}
		fmt.Fprintf(&b, "(%s,%s,%d)", from, to, e.Weight)
	}
	b.WriteByte(']')

	return b.String()
}
