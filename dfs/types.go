// Option types, the VertexState enumeration, sentinel errors, and the
// Result type for depth-first traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState is the visitation state of a vertex during DFS.
type VertexState uint8

const (
	// Unvisited: the vertex has not been discovered yet.
	Unvisited VertexState = iota

	// InProgress: the vertex is on the current DFS path; meeting an
	// InProgress vertex over a directed edge is a back edge.
	InProgress

	// Done: the vertex and all its descendants are fully explored.
	Done
)

// Sentinel errors for DFS and the derived structure queries.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex ID does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates no topological ordering exists because the
	// graph contains a directed cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates an operation that requires directed
	// edges (topological sorting) was asked of an undirected graph.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")

	// ErrDirectedGraph indicates an operation that requires undirected
	// edges (union-find cycle checking) was asked of a directed graph.
	ErrDirectedGraph = errors.New("dfs: undirected graph required")
)

// Option configures DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, fires on discovery (preorder). A returned error
	// aborts the traversal.
	OnVisit func(id string) error

	// OnExit, if non-nil, fires after a vertex's descendants are fully
	// explored (postorder). A returned error aborts the traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits traversal to the given depth;
	// 0 visits only the start vertex. Default -1 means no limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted per neighbor; returning
	// false skips that neighbor.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts DFS from every unvisited vertex in sorted
	// order, covering disconnected components.
	FullTraversal bool

	// Recursive selects the recursive engine. The default is the explicit
	// frame stack, which cannot overflow on deep graphs.
	Recursive bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filtering, single-source iterative traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the preorder hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the postorder hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal restarts DFS from every unvisited vertex, covering
// disconnected components (forest traversal).
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithRecursive selects the recursive engine. Intended for shallow inputs;
// the iterative default handles arbitrary depth.
func WithRecursive() Option {
	return func(o *Options) { o.Recursive = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (preorder) sequence; a parent
	// always appears before its children.
	Order []string

	// PostOrder records vertices in finish sequence.
	PostOrder []string

	// Depth maps each visited vertex to its distance in edges from the
	// root of its DFS tree.
	Depth map[string]int

	// Parent maps each visited vertex to the vertex it was discovered
	// from; roots of DFS trees are absent.
	Parent map[string]string

	// Visited flags every vertex reached by the traversal.
	Visited map[string]bool
}
