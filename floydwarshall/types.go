package floydwarshall

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for pairs no path connects.
const Unreachable int64 = math.MaxInt64

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrUnweightedGraph indicates the graph does not carry weights;
	// all-pairs distances would be meaningless hop counts.
	ErrUnweightedGraph = errors.New("floydwarshall: graph must be weighted")

	// ErrNegativeCycle indicates some cycle has negative total weight,
	// making shortest distances unbounded below.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrNoPath is returned by Result.Path for unreachable pairs.
	ErrNoPath = errors.New("floydwarshall: no path between vertices")

	// ErrVertexNotFound is returned by Result.Path when an endpoint is
	// not part of the graph the result was computed from.
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found")
)

// Options configures a FloydWarshall run.
type Options struct {
	// Ctx is polled once per outer k-iteration; nil means Background.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext installs a context checked between k-iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the all-pairs tables.
type Result struct {
	// Dist[from][to] is the shortest-path weight, Unreachable when no
	// path exists. Dist[v][v] is always 0.
	Dist map[string]map[string]int64

	// next[from][to] is the first hop on a shortest from→to path; used
	// by Path. Empty string marks an unreachable pair.
	next map[string]map[string]string
}

// Path reconstructs one shortest path from → to by following next-hops.
// Returns ErrVertexNotFound for unknown endpoints and ErrNoPath when the
// pair is disconnected.
func (r *Result) Path(from, to string) ([]string, error) {
	if _, ok := r.Dist[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := r.Dist[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if from == to {
		return []string{from}, nil
	}
	if r.next[from][to] == "" {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, from, to)
	}
	path := []string{from}
	for at := from; at != to; {
		at = r.next[at][to]
		path = append(path, at)
	}
	return path, nil
}
