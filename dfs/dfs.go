package dfs

import (
	"fmt"

	"github.com/gryphlib/gryph/core"
)

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component, restarting from unvisited vertices in sorted order;
// otherwise it explores only from startID.
//
// The default engine keeps an explicit frame stack, so recursion depth is
// bounded by heap memory rather than goroutine stack; WithRecursive swaps
// in the classic recursive formulation. Both produce the same preorder.
//
// Returns ErrNilGraph, ErrStartVertexNotFound, a context error, or an
// error from a hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:     make([]string, 0, n),
			PostOrder: make([]string, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
			Visited:   make(map[string]bool, n),
		},
	}

	roots := []string{startID}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, root := range roots {
		if w.res.Visited[root] {
			continue
		}
		if err := w.run(root); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// dfsWalker carries per-run traversal state.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// run launches one DFS tree from root with the configured engine.
func (w *dfsWalker) run(root string) error {
	if w.opts.Recursive {
		return w.recurse(root, 0)
	}

	return w.iterate(root)
}

// frame is one suspended visit on the explicit stack: a vertex, its depth,
// and the position reached in its neighbor list.
type frame struct {
	id    string
	depth int
	edges []*core.Edge
	next  int
}

// iterate walks one DFS tree with an explicit frame stack. Frames resume
// where they left off, so the discovery order matches the recursive engine
// exactly while the stack lives on the heap.
func (w *dfsWalker) iterate(root string) error {
	top, err := w.discover(root, 0)
	if err != nil {
		return err
	}
	stack := []*frame{top}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		advanced := false
		for f.next < len(f.edges) {
			e := f.edges[f.next]
			f.next++
			nbr, ok := w.admit(e, f.id, f.depth+1)
			if !ok {
				continue
			}
			w.res.Parent[nbr] = f.id
			child, err := w.discover(nbr, f.depth+1)
			if err != nil {
				return err
			}
			stack = append(stack, child)
			advanced = true
			break
		}
		if advanced {
			continue
		}

		// Frame exhausted: postorder, then pop.
		if err := w.finish(f.id); err != nil {
			return err
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// recurse walks one DFS tree with plain recursion. Depth is bounded by the
// goroutine stack; prefer the iterative engine for deep graphs.
func (w *dfsWalker) recurse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	f, err := w.discover(id, depth)
	if err != nil {
		return err
	}
	for _, e := range f.edges {
		nbr, ok := w.admit(e, id, depth+1)
		if !ok {
			continue
		}
		w.res.Parent[nbr] = id
		if err = w.recurse(nbr, depth+1); err != nil {
			return err
		}
	}

	return w.finish(id)
}

// discover marks id visited, records preorder bookkeeping, fires OnVisit,
// and returns the frame holding its neighbor list.
func (w *dfsWalker) discover(id string, depth int) (*frame, error) {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit at %q: %w", id, err)
		}
	}
	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	return &frame{id: id, depth: depth, edges: edges}, nil
}

// admit decides whether the edge e leaving id leads to a vertex worth
// descending into, returning that vertex on success.
func (w *dfsWalker) admit(e *core.Edge, id string, childDepth int) (string, bool) {
	nbr := e.Other(id)
	if nbr == id {
		return "", false // self-loop: nothing new to visit
	}
	if w.res.Visited[nbr] {
		return "", false
	}
	if w.opts.MaxDepth >= 0 && childDepth > w.opts.MaxDepth {
		return "", false
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
		return "", false
	}

	return nbr, true
}

// finish records postorder bookkeeping and fires OnExit.
func (w *dfsWalker) finish(id string) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit at %q: %w", id, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
