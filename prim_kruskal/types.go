package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// ErrInvalidGraph indicates that no graph was supplied (nil *core.Graph).
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not connected, so no spanning
// tree covering all vertices exists. No partial tree is returned with it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrInvalidRoot indicates that Prim's start vertex is outside [0, n).
// Errors carrying it also match core.ErrVertexNotFound.
var ErrInvalidRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an MSTOptions.Method that names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrUnknownCycleCheck indicates an MSTOptions.CycleCheck that names no strategy.
var ErrUnknownCycleCheck = errors.New("prim_kruskal: unknown cycle check")

// ErrInvalidTree indicates that Verify rejected a spanning tree.
var ErrInvalidTree = errors.New("prim_kruskal: invalid spanning tree")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm with the O(V·E) cut scan.
const MethodPrim = "prim"

// MethodPrimHeap selects Prim's algorithm on an indexed min-heap of ranked crossing arcs.
// It makes exactly the same choices as MethodPrim.
const MethodPrimHeap = "prim-heap"

// Cycle-check strategies for Kruskal. All three accept and reject exactly the
// same edges; only CycleCheckUnionFind scales, the others exist as reference
// oracles.
const (
	// CycleCheckUnionFind asks a disjoint-set union (default).
	CycleCheckUnionFind = "union-find"

	// CycleCheckTraversal runs a DFS over the accepted forest per candidate edge.
	CycleCheckTraversal = "traversal"

	// CycleCheckParentMap rebuilds a parent map from the accepted edges per candidate edge.
	CycleCheckParentMap = "parent-map"
)

// DefaultRoot is the start vertex Prim uses unless WithRoot says otherwise.
const DefaultRoot = 0

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal, union-find, root 0).
//
// Fields:
//
//	Method     string: one of MethodKruskal, MethodPrim, MethodPrimHeap.
//	Root       int   : start vertex for Prim; ignored by Kruskal.
//	CycleCheck string: Kruskal cycle strategy; ignored by Prim.
type MSTOptions struct {
	// Method to use: MethodKruskal, MethodPrim or MethodPrimHeap.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// CycleCheck selects how Kruskal detects cycles. Unused by Prim.
	CycleCheck string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithCycleCheck returns an Option that sets Kruskal's cycle-check strategy.
func WithCycleCheck(name string) Option {
	return func(opts *MSTOptions) {
		opts.CycleCheck = name
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method     = MethodKruskal
//	– Root       = DefaultRoot
//	– CycleCheck = CycleCheckUnionFind
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:     MethodKruskal,
		Root:       DefaultRoot,
		CycleCheck: CycleCheckUnionFind,
	}
}

// Compute applies opts on top of DefaultOptions and runs the selected algorithm.
//
//	– MethodKruskal:  Kruskal with the configured cycle check.
//	– MethodPrim:     Prim(graph, Root).
//	– MethodPrimHeap: PrimHeap(graph, Root).
//	– otherwise:      ErrUnknownMethod.
//
// Returns a sealed *SpanningTree or an error; never both.
func Compute(graph *core.Graph, opts ...Option) (*SpanningTree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Dispatch by method name.
	switch o.Method {
	case MethodKruskal:
		factory, err := cycleCheckFactory(o.CycleCheck)
		if err != nil {
			return nil, err
		}

		return kruskal(graph, factory)
	case MethodPrim:
		return Prim(graph, o.Root)
	case MethodPrimHeap:
		return PrimHeap(graph, o.Root)
	default:
		return nil, fmt.Errorf("Compute: %q: %w", o.Method, ErrUnknownMethod)
	}
}

// Methods lists the accepted MSTOptions.Method values.
func Methods() []string {
	return []string{MethodKruskal, MethodPrim, MethodPrimHeap}
}

// CycleChecks lists the accepted MSTOptions.CycleCheck values.
func CycleChecks() []string {
	return []string{CycleCheckUnionFind, CycleCheckTraversal, CycleCheckParentMap}
}
