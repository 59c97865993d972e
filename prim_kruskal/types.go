package prim_kruskal

import (
	"context"
	"errors"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrDirectedGraph indicates the graph is directed; spanning trees
	// are defined on undirected graphs only.
	ErrDirectedGraph = errors.New("prim_kruskal: graph must be undirected")

	// ErrUnweightedGraph indicates the graph does not carry weights.
	ErrUnweightedGraph = errors.New("prim_kruskal: graph must be weighted")

	// ErrDisconnected indicates no single tree can span every vertex.
	// Use WithForest to accept a spanning forest instead.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrEmptyRoot indicates Prim was called with an empty root ID.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")
)

// Options configures an MST run.
type Options struct {
	// Ctx is polled once per accepted edge; nil means Background.
	Ctx context.Context

	// Forest accepts disconnected inputs: Kruskal spans every
	// component, Prim spans the root's component only.
	Forest bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Background context,
// strict single-tree mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext installs a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithForest permits disconnected graphs; see the package doc for the
// Kruskal/Prim asymmetry.
func WithForest() Option {
	return func(o *Options) { o.Forest = true }
}

// Result is the outcome of Kruskal or Prim.
type Result struct {
	// Edges are the chosen tree edges in acceptance order.
	Edges []core.Edge

	// Weight is the sum of chosen edge weights.
	Weight int64
}

// validate applies the shared precondition checks.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	return nil
}
