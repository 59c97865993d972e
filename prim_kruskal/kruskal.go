package prim_kruskal

import (
	"sort"

	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/dsu"
)

// Kruskal computes a minimum spanning tree of an undirected weighted
// graph by scanning edges in ascending weight order and accepting those
// that join two components.
//
// Returns ErrNilGraph, ErrDirectedGraph, ErrUnweightedGraph on bad
// input; ErrDisconnected when the graph has more than one component and
// WithForest was not given. An empty graph yields an empty Result.
func Kruskal(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	res := &Result{Edges: []core.Edge{}}
	if len(vertices) <= 1 {
		return res, nil
	}

	// Self-loops can never join components; drop them up front.
	edges := make([]*core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	// Stable keeps insertion order among equal weights, which makes the
	// chosen tree deterministic for a given construction sequence.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	sets := dsu.New(vertices...)
	need := len(vertices) - 1
	for _, e := range edges {
		if sets.Union(e.From, e.To) {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
			res.Edges = append(res.Edges, *e)
			res.Weight += e.Weight
			if len(res.Edges) == need {
				break
			}
		}
	}

	if !o.Forest && len(res.Edges) < need {
		return nil, ErrDisconnected
	}
	return res, nil
}
