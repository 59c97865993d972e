// This file declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one logical connection between two vertices.
//
// For a directed graph the edge runs From→To only. For an undirected graph
// the same Edge value is reachable through both endpoints' adjacency;
// algorithms that must not retrace the edge they arrived by (cycle
// detection, bridges) compare Edge IDs, not endpoint pairs.
type Edge struct {
	// ID uniquely identifies this edge within its Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID (first endpoint for undirected edges).
	From string

	// To is the target vertex ID (second endpoint for undirected edges).
	To string

	// Weight is the cost or capacity of the edge. Zero on unweighted graphs;
	// unweighted traversals treat every edge as weight 1.
	Weight int64

	// seq is the insertion sequence number backing ID; used for
	// deterministic ordering of Neighbors and Edges.
	seq uint64
}

// Other returns the endpoint of e that is not id. For a self-loop it
// returns id itself.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph at construction time. Flags are immutable
// once NewGraph returns.
type GraphOption func(*Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected; the default is undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory graph store.
//
// Vertices are opaque string IDs; edges live in a catalog keyed by edge ID
// with a nested adjacency index adj[from][to] = set of edge IDs. A single
// RWMutex guards all three maps, so Graph is safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	// Construction-time flags; immutable afterwards.
	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextSeq  uint64
	vertices map[string]struct{}
	edges    map[string]*Edge

	// adj[from][to] holds the IDs of every edge joining the pair.
	// Undirected edges are indexed under both orientations.
	adj map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. The default is undirected, unweighted,
// no self-loops, no parallel edges; options flip individual flags.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
