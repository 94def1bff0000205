// Package dfs defines the options, result type and errors for depth-first
// traversal of a core.Graph.
package dfs

import "errors"

// Vertex colouring used by traversal and cycle detection.
const (
	White = iota // White: not yet discovered.
	Gray         // Gray: discovered, still on the DFS stack.
	Black        // Black: all descendants explored.
)

// NoParent marks a vertex with no DFS parent (roots and undiscovered vertices).
const NoParent = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex is outside [0, n).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS.
type Option func(*Options)

// Options holds the traversal knobs resolved from Option values.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex are
	// explored (post-order). Returning an error aborts the traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, stops descent below the given depth.
	// 0 visits only the start vertex. Default -1 (unlimited).
	MaxDepth int

	// FullTraversal restarts from every undiscovered vertex in ascending
	// order, covering all components.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no depth limit and
// single-source traversal.
func DefaultOptions() Options {
	return Options{
		OnVisit:       nil,
		OnExit:        nil,
		MaxDepth:      -1,
		FullTraversal: false,
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFullTraversal makes DFS cover every component of the graph.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a traversal. All slices are indexed by vertex.
type Result struct {
	// Preorder lists vertices in discovery order.
	Preorder []int

	// Order lists vertices in finish (post-order) order.
	Order []int

	// Depth[v] is the number of tree edges from v's root, or -1 if undiscovered.
	Depth []int

	// Parent[v] is the vertex that discovered v, or NoParent.
	Parent []int

	// Visited[v] reports whether v was discovered.
	Visited []bool
}

// Count returns the number of discovered vertices.
func (r *Result) Count() int {
	return len(r.Preorder)
}
