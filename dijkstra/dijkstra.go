package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/gryphlib/gryph/core"
)

// Dijkstra computes shortest distances from source to every vertex of the
// weighted graph g.
//
// Validation order: options, nil graph, weighted flag, source presence,
// then an O(E) pre-scan for negative weights so the failure mode is an
// eager error rather than a wrong answer.
//
// Returns ErrNilGraph, ErrUnweightedGraph, ErrSourceNotFound,
// ErrNegativeWeight, ErrBadMaxDistance, or a context error.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, source, o)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single execution; it is created per
// call and discarded, so the graph itself stays untouched.
type runner struct {
	g         *core.Graph
	opts      Options
	res       *Result
	finalized map[string]bool
	pq        minHeap
}

func newRunner(g *core.Graph, source string, o Options) *runner {
	n := g.VertexCount()
	res := &Result{
		Source: source,
		Dist:   make(map[string]int64, n),
	}
	if o.ReturnPath {
		res.Prev = make(map[string]string, n)
	}
	for _, v := range g.Vertices() {
		res.Dist[v] = Unreachable
	}
	res.Dist[source] = 0

	r := &runner{
		g:         g,
		opts:      o,
		res:       res,
		finalized: make(map[string]bool, n),
		pq:        make(minHeap, 0, n),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, heapItem{id: source, dist: 0})

	return r
}

// process pops vertices in increasing distance order, skipping stale heap
// entries, until the queue drains or every remaining vertex lies beyond
// MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(heapItem)
		if r.finalized[item.id] {
			continue // stale duplicate from lazy decrease-key
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.finalized[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u. A strict
// improvement updates Dist (and Prev) and pushes a fresh heap entry.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: Neighbors(%q): %w", u, err)
	}
	base := r.res.Dist[u]
	for _, e := range edges {
		v := e.Other(u)
		if r.finalized[v] {
			continue
		}
		next := base + e.Weight
		if next > r.opts.MaxDistance {
			continue
		}
		if next >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = next
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		heap.Push(&r.pq, heapItem{id: v, dist: next})
	}

	return nil
}
