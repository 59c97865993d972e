// Topological sorting of directed acyclic graphs, two ways: reversed DFS
// postorder and Kahn's in-degree peeling. Both reject cyclic input with
// ErrCycleDetected; Kahn's drained-early queue is the authoritative
// "no valid ordering exists" signal.
package dfs

import (
	"context"
	"fmt"

	"github.com/gryphlib/gryph/core"
)

// TopoOption configures the sorting entry points.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context for a sort.
// A nil context keeps the default.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort computes an ordering of all vertices of the directed
// graph g such that every edge u→v has u before v, via DFS postorder
// reversed. Roots are taken in sorted order, so the result is
// deterministic for a given graph.
//
// Returns ErrNilGraph, ErrUndirectedGraph, ErrCycleDetected, or a
// context error.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.VertexCount()
	state := make(map[string]VertexState, n)
	order := make([]string, 0, n)

	for _, root := range g.Vertices() {
		if state[root] != Unvisited {
			continue
		}
		if err := topoVisit(g, root, opts.ctx, state, &order); err != nil {
			return nil, err
		}
	}

	// Reverse the postorder in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// topoVisit runs an iterative three-color DFS from root, appending
// vertices in finish order.
func topoVisit(
	g *core.Graph,
	root string,
	ctx context.Context,
	state map[string]VertexState,
	order *[]string,
) error {
	f, err := openCycleFrame(g, root, "")
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", root, err)
	}
	state[root] = InProgress
	stack := []*cycleFrame{f}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		if top.next == len(top.out) {
			state[top.id] = Done
			*order = append(*order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.out[top.next]
		top.next++
		switch state[e.To] {
		case InProgress:
			return ErrCycleDetected
		case Unvisited:
			child, err := openCycleFrame(g, e.To, e.ID)
			if err != nil {
				return fmt.Errorf("dfs: Neighbors(%q): %w", e.To, err)
			}
			state[e.To] = InProgress
			stack = append(stack, child)
		}
	}

	return nil
}

// KahnSort computes a topological ordering of the directed graph g by
// repeatedly removing vertices of in-degree zero. When the ready queue
// drains before every vertex is emitted, the remainder all sit on cycles
// and ErrCycleDetected is returned.
//
// The ready queue is seeded in sorted vertex order and serviced FIFO, so
// the result is deterministic for a given graph.
//
// Returns ErrNilGraph, ErrUndirectedGraph, ErrCycleDetected, or a
// context error.
// Complexity: O(V + E) time, O(V) memory.
func KahnSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	vertices := g.Vertices()
	inDegree := make(map[string]int, len(vertices))
	for _, v := range vertices {
		inDegree[v] = 0
	}
	for _, v := range vertices {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: Neighbors(%q): %w", v, err)
		}
		for _, e := range edges {
			inDegree[e.To]++
		}
	}

	queue := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(vertices))
	for len(queue) > 0 {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		v := queue[0]
		queue = queue[1:]
		order = append(order, v)

		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: Neighbors(%q): %w", v, err)
		}
		for _, e := range edges {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	// The authoritative cycle signal: vertices left with positive
	// in-degree can never become ready.
	if len(order) != len(vertices) {
		return nil, ErrCycleDetected
	}

	return order, nil
}
