package flow

import (
	"context"
	"errors"
)

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrUnweightedGraph indicates the graph carries no weights to read
	// as capacities.
	ErrUnweightedGraph = errors.New("flow: graph must be weighted")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound indicates the sink vertex does not exist.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints indicates source and sink are the same vertex.
	ErrSameEndpoints = errors.New("flow: source and sink must differ")

	// ErrNegativeCapacity indicates some edge weight is negative;
	// capacities must be non-negative.
	ErrNegativeCapacity = errors.New("flow: negative capacity")
)

// Options configures a max-flow run.
type Options struct {
	// Ctx is polled once per augmenting path (per level phase for
	// Dinic); nil means Background.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
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

// Result is the outcome of a max-flow computation.
type Result struct {
	// Value is the total flow pushed from source to sink.
	Value int64

	// Flow[u][v] is the net flow routed along the aggregated u→v
	// capacity; only positive entries are present.
	Flow map[string]map[string]int64

	// MinCut is the source side of a minimum cut, sorted ascending:
	// the vertices still reachable in the final residual network.
	MinCut []string
}
