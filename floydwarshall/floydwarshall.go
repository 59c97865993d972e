package floydwarshall

import (
	"github.com/gryphlib/gryph/core"
)

// FloydWarshall computes shortest-path weights between every ordered pair
// of vertices in g. Undirected edges count in both directions; parallel
// edges contribute their minimum weight.
//
// Returns ErrNilGraph, ErrUnweightedGraph, ErrNegativeCycle when any
// cycle has negative total weight, or the options context error.
func FloydWarshall(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	ids := g.Vertices()
	res := &Result{
		Dist: make(map[string]map[string]int64, len(ids)),
		next: make(map[string]map[string]string, len(ids)),
	}
	for _, u := range ids {
		res.Dist[u] = make(map[string]int64, len(ids))
		res.next[u] = make(map[string]string, len(ids))
		for _, v := range ids {
			res.Dist[u][v] = Unreachable
		}
		res.Dist[u][u] = 0
	}

	// Seed direct edges, keeping the lightest of any parallel bundle.
	for _, e := range g.Edges() {
		seed(res, e.From, e.To, e.Weight)
		if !g.Directed() {
			seed(res, e.To, e.From, e.Weight)
		}
	}

	for _, k := range ids {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		for _, i := range ids {
			dik := res.Dist[i][k]
			if dik == Unreachable {
				continue
			}
			for _, j := range ids {
				dkj := res.Dist[k][j]
				if dkj == Unreachable {
					continue
				}
				if through := dik + dkj; through < res.Dist[i][j] {
					res.Dist[i][j] = through
					res.next[i][j] = res.next[i][k]
				}
			}
		}
	}

	// A vertex cheaper to reach from itself than staying put sits on a
	// negative cycle.
	for _, v := range ids {
		if res.Dist[v][v] < 0 {
			return nil, ErrNegativeCycle
		}
	}
	return res, nil
}

func seed(res *Result, from, to string, w int64) {
	if w < res.Dist[from][to] {
		res.Dist[from][to] = w
		res.next[from][to] = to
	}
}
