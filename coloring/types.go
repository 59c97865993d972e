package coloring

import (
	"context"
	"errors"
)

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrDirectedGraph indicates the graph is directed.
	ErrDirectedGraph = errors.New("coloring: graph must be undirected")

	// ErrOddCycle indicates two colors do not suffice: some cycle has
	// odd length.
	ErrOddCycle = errors.New("coloring: graph contains an odd cycle")
)

// Options configures a coloring run.
type Options struct {
	// Ctx is polled once per component seed; nil means Background.
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

// Bipartition is a two-coloring of a bipartite graph. Isolated vertices
// land in Left.
type Bipartition struct {
	// Left and Right are the two sides, each sorted ascending.
	Left, Right []string

	// Side maps a vertex to false (Left) or true (Right).
	Side map[string]bool
}

// Coloring is a proper vertex coloring.
type Coloring struct {
	// Colors maps every vertex to a color in [0, Palette).
	Colors map[string]int

	// Palette is the number of distinct colors used.
	Palette int
}
