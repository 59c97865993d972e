// Sentinel errors, options, and the Result type for Bellman-Ford.
package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("bellmanford: source vertex not found")

	// ErrUnweightedGraph indicates the graph does not carry weights;
	// run bfs for unweighted shortest paths instead.
	ErrUnweightedGraph = errors.New("bellmanford: graph must be weighted")

	// ErrNegativeCycle indicates a negative-total-weight cycle is
	// reachable from the source, so no shortest distances exist.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrNoPath is returned by Result.PathTo for unreachable destinations.
	ErrNoPath = errors.New("bellmanford: destination not reachable")
)

// Option configures a BellmanFord run.
type Option func(*Options)

// Options holds the tunable parameters of one run.
type Options struct {
	// Ctx allows cancellation between relaxation passes; defaults to
	// context.Background().
	Ctx context.Context

	// ReturnPath requests the predecessor map in the Result.
	ReturnPath bool
}

// DefaultOptions returns Options with a background context and no
// predecessor map.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath requests the predecessor map, enabling Result.PathTo.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// Result holds the outcome of one BellmanFord run.
type Result struct {
	// Source is the vertex distances are measured from.
	Source string

	// Dist maps every vertex to its shortest distance from Source, or
	// Unreachable when no path exists.
	Dist map[string]int64

	// Prev maps each reached vertex (except Source) to its predecessor on
	// a shortest path. Nil unless WithReturnPath was given.
	Prev map[string]string

	// Passes is the number of relaxation passes actually executed before
	// the distances stabilized; at most |V|-1.
	Passes int
}

// PathTo reconstructs a shortest Source→dest path through Prev.
// Requires WithReturnPath; returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if r.Prev == nil {
		return nil, errors.New("bellmanford: run with WithReturnPath to reconstruct paths")
	}
	if d, ok := r.Dist[dest]; !ok || d == Unreachable {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
