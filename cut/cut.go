package cut

import (
	"sort"

	"github.com/gryphlib/gryph/core"
)

// Cut computes the articulation points and bridges of an undirected
// graph in one DFS pass per component.
//
// Returns ErrNilGraph, ErrDirectedGraph, or the options context error.
func Cut(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	w := &walker{
		g:      g,
		disc:   make(map[string]int, g.VertexCount()),
		low:    make(map[string]int, g.VertexCount()),
		points: make(map[string]bool),
		bridge: make(map[string]bool),
	}
	for _, v := range g.Vertices() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if _, seen := w.disc[v]; !seen {
			if err := w.run(v); err != nil {
				return nil, err
			}
		}
	}
	return w.result()
}

// ArticulationPoints returns only the articulation points of g.
func ArticulationPoints(g *core.Graph, opts ...Option) ([]string, error) {
	res, err := Cut(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Points, nil
}

// Bridges returns only the bridge edges of g.
func Bridges(g *core.Graph, opts ...Option) ([]core.Edge, error) {
	res, err := Cut(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Bridges, nil
}

type walker struct {
	g      *core.Graph
	next   int
	disc   map[string]int
	low    map[string]int
	points map[string]bool
	bridge map[string]bool // edge IDs
}

// frame is one suspended visit. via is the ID of the edge the walk
// arrived by; skipping exactly that edge (rather than every edge back
// to the parent) keeps parallel bundles out of the bridge set. children
// counts DFS subtrees for the root rule.
type frame struct {
	v        string
	via      string
	edges    []*core.Edge
	pos      int
	children int
}

func (w *walker) run(root string) error {
	frames := []*frame{w.open(root, "")}
	for len(frames) > 0 {
		f := frames[len(frames)-1]
		if f.pos < len(f.edges) {
			e := f.edges[f.pos]
			f.pos++
			u := e.Other(f.v)
			switch {
			case e.ID == f.via || u == f.v:
				// Arrival edge or self-loop.
			case !w.discovered(u):
				f.children++
				frames = append(frames, w.open(u, e.ID))
			default:
				// Back edge.
				if w.disc[u] < w.low[f.v] {
					w.low[f.v] = w.disc[u]
				}
			}
			continue
		}

		frames = frames[:len(frames)-1]
		if len(frames) == 0 {
			if f.children >= 2 {
				w.points[f.v] = true
			}
			continue
		}
		p := frames[len(frames)-1]
		if w.low[f.v] < w.low[p.v] {
			w.low[p.v] = w.low[f.v]
		}
		if w.low[f.v] > w.disc[p.v] {
			w.bridge[f.via] = true
		}
		// The root rule (children >= 2) is applied when its frame
		// closes; every other vertex uses the low-link rule here.
		if len(frames) > 1 && w.low[f.v] >= w.disc[p.v] {
			w.points[p.v] = true
		}
	}
	return nil
}

func (w *walker) open(v, via string) *frame {
	w.disc[v] = w.next
	w.low[v] = w.next
	w.next++
	edges, _ := w.g.Neighbors(v)
	return &frame{v: v, via: via, edges: edges}
}

func (w *walker) discovered(v string) bool {
	_, ok := w.disc[v]
	return ok
}

func (w *walker) result() (*Result, error) {
	res := &Result{Points: make([]string, 0, len(w.points)), Bridges: []core.Edge{}}
	for v := range w.points {
		res.Points = append(res.Points, v)
	}
	sort.Strings(res.Points)
	for _, e := range w.g.Edges() {
		if w.bridge[e.ID] {
			res.Bridges = append(res.Bridges, *e)
		}
	}
	return res, nil
}
