// Package graphio reads graph documents and renders spanning trees.
//
// A graph document is YAML (JSON is accepted too, being a YAML subset):
//
//	vertices: 4          # required with edges, optional with matrix
//	edges:               # [from, to, weight] triples, or:
//	  - [0, 1, 3]
//	  - [1, 2, 1]
//	matrix:              # square adjacency matrix, 0 = no edge
//	  - [0, 3]
//	  - [3, 0]
//	strict: true         # matrix must be fully symmetric
//	labels: [a, b, c, d] # optional vertex names used when rendering
//
// Exactly one of edges and matrix may be present; a document with neither
// describes an edgeless graph of the given size.
package graphio
