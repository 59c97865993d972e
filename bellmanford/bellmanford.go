package bellmanford

import (
	"github.com/gryphlib/gryph/core"
)

// arc is one relaxable direction of an edge. Directed edges contribute one
// arc, undirected edges two.
type arc struct {
	from, to string
	weight   int64
}

// BellmanFord computes shortest distances from source to every vertex of
// the weighted graph g, tolerating negative edge weights.
//
// Returns ErrNilGraph, ErrUnweightedGraph, ErrSourceNotFound,
// ErrNegativeCycle when a negative cycle is reachable from the source,
// or a context error.
func BellmanFord(g *core.Graph, source string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
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

	arcs := collectArcs(g)
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

	// Up to |V|-1 full passes; a pass with no improvement means the
	// distances are final and the detection pass cannot fire either.
	for pass := 1; pass < n; pass++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		changed := false
		for _, a := range arcs {
			if relax(res, a) {
				changed = true
			}
		}
		res.Passes = pass
		if !changed {
			return res, nil
		}
	}

	// Detection pass: any remaining improvement proves a negative cycle
	// reachable from the source.
	for _, a := range arcs {
		if res.Dist[a.from] == Unreachable {
			continue
		}
		if res.Dist[a.from]+a.weight < res.Dist[a.to] {
			return nil, ErrNegativeCycle
		}
	}

	return res, nil
}

// collectArcs flattens the edge set into relaxable directions.
func collectArcs(g *core.Graph) []arc {
	edges := g.Edges()
	arcs := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, arc{from: e.From, to: e.To, weight: e.Weight})
		if !g.Directed() && e.From != e.To {
			arcs = append(arcs, arc{from: e.To, to: e.From, weight: e.Weight})
		}
	}

	return arcs
}

// relax applies one arc, reporting whether it improved the target. Arcs
// out of unreached vertices are skipped, which also keeps the arithmetic
// clear of the Unreachable sentinel.
func relax(res *Result, a arc) bool {
	if res.Dist[a.from] == Unreachable {
		return false
	}
	next := res.Dist[a.from] + a.weight
	if next >= res.Dist[a.to] {
		return false
	}
	res.Dist[a.to] = next
	if res.Prev != nil {
		res.Prev[a.to] = a.from
	}

	return true
}
