// Sentinel errors, options, the Result type, and the priority queue used
// by Dijkstra's algorithm.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrUnweightedGraph indicates the graph does not carry weights;
	// run bfs for unweighted shortest paths instead.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Dijkstra's correctness requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath is returned by Result.PathTo for unreachable destinations.
	ErrNoPath = errors.New("dijkstra: destination not reachable")
)

// Option configures a Dijkstra run.
type Option func(*Options)

// Options holds the tunable parameters of one run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// ReturnPath requests the predecessor map in the Result.
	ReturnPath bool

	// MaxDistance stops the search once the nearest open vertex lies
	// beyond this cap. Defaults to no cap.
	MaxDistance int64

	err error
}

// DefaultOptions returns Options with a background context, no predecessor
// map, and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt64,
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

// WithReturnPath requests the predecessor map, enabling Result.PathTo.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: vertices whose shortest distance
// exceeds d are never finalized. Negative caps are rejected at invocation.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// Result holds the outcome of one Dijkstra run.
type Result struct {
	// Source is the vertex distances are measured from.
	Source string

	// Dist maps every vertex to its shortest distance from Source, or
	// Unreachable when no path exists.
	Dist map[string]int64

	// Prev maps each reached vertex (except Source) to its predecessor on
	// a shortest path. Nil unless WithReturnPath was given.
	Prev map[string]string
}

// PathTo reconstructs a shortest Source→dest path through Prev.
// Requires WithReturnPath; returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if r.Prev == nil {
		return nil, errors.New("dijkstra: run with WithReturnPath to reconstruct paths")
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

// heapItem is one (vertex, tentative distance) pair on the queue. The same
// vertex may appear several times with decreasing distances; only the
// first pop counts.
type heapItem struct {
	id   string
	dist int64
}

// minHeap orders heapItems by ascending distance.
type minHeap []heapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
