package cut

import (
	"context"
	"errors"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("cut: graph is nil")

	// ErrDirectedGraph indicates the graph is directed; articulation
	// points and bridges are defined on undirected graphs.
	ErrDirectedGraph = errors.New("cut: graph must be undirected")
)

// Options configures a Cut run.
type Options struct {
	// Ctx is polled once per component root; nil means Background.
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

// Result holds both cut answers from one walk.
type Result struct {
	// Points are the articulation points, sorted ascending.
	Points []string

	// Bridges are the bridge edges in insertion order.
	Bridges []core.Edge
}
