package coloring

import (
	"errors"
	"sort"

	"github.com/gryphlib/gryph/core"
)

// Bipartite two-colors an undirected graph by BFS layer parity, seeding
// each component from its smallest vertex.
//
// Returns ErrNilGraph, ErrDirectedGraph, ErrOddCycle when two colors
// cannot suffice, or the options context error. Self-loops are odd
// cycles of length one.
func Bipartite(g *core.Graph, opts ...Option) (*Bipartition, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate(g); err != nil {
		return nil, err
	}

	side := make(map[string]bool, g.VertexCount())
	for _, seed := range g.Vertices() {
		if _, seen := side[seed]; seen {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		side[seed] = false
		queue := []string{seed}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			neighbors, _ := g.NeighborIDs(v)
			for _, u := range neighbors {
				if u == v {
					return nil, ErrOddCycle
				}
				if prev, seen := side[u]; seen {
					if prev == side[v] {
						return nil, ErrOddCycle
					}
					continue
				}
				side[u] = !side[v]
				queue = append(queue, u)
			}
		}
	}

	res := &Bipartition{Side: side}
	for v, s := range side {
		if s {
			res.Right = append(res.Right, v)
		} else {
			res.Left = append(res.Left, v)
		}
	}
	sort.Strings(res.Left)
	sort.Strings(res.Right)
	return res, nil
}

// IsBipartite reports whether two colors suffice for g. Validation
// failures still surface as errors; an odd cycle is just false.
func IsBipartite(g *core.Graph, opts ...Option) (bool, error) {
	_, err := Bipartite(g, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrOddCycle):
		return false, nil
	default:
		return false, err
	}
}

// Greedy colors vertices in sorted order, assigning each the smallest
// color absent from its already-colored neighborhood. The palette is at
// most maxDegree+1 colors but not guaranteed minimal.
//
// Returns ErrNilGraph, ErrDirectedGraph, or the options context error.
// Self-loops are skipped: a vertex never conflicts with itself.
func Greedy(g *core.Graph, opts ...Option) (*Coloring, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate(g); err != nil {
		return nil, err
	}

	res := &Coloring{Colors: make(map[string]int, g.VertexCount())}
	for _, v := range g.Vertices() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		neighbors, _ := g.NeighborIDs(v)
		taken := make(map[int]bool, len(neighbors))
		for _, u := range neighbors {
			if u == v {
				continue
			}
			if c, ok := res.Colors[u]; ok {
				taken[c] = true
			}
		}
		c := 0
		for taken[c] {
			c++
		}
		res.Colors[v] = c
		if c+1 > res.Palette {
			res.Palette = c + 1
		}
	}
	return res, nil
}

func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	return nil
}
