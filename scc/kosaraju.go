package scc

import (
	"github.com/gryphlib/gryph/core"
)

// Kosaraju decomposes a directed graph into strongly connected
// components with two DFS passes: the first records a postorder over g,
// the second walks g's transpose in reverse postorder, harvesting one
// component per tree.
//
// Returns ErrNilGraph, ErrUndirectedGraph, or the options context error.
func Kosaraju(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	post := make([]string, 0, g.VertexCount())
	seen := make(map[string]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if !seen[v] {
			postorder(g, v, seen, &post)
		}
	}

	rev := g.Transpose()
	assigned := make(map[string]bool, len(post))
	var comps [][]string
	for i := len(post) - 1; i >= 0; i-- {
		v := post[i]
		if assigned[v] {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		comps = append(comps, collect(rev, v, assigned))
	}
	return normalize(comps), nil
}

// postorder appends vertices reachable from root in DFS postorder,
// using an explicit frame stack.
func postorder(g *core.Graph, root string, seen map[string]bool, out *[]string) {
	type frame struct {
		v    string
		succ []string
		pos  int
	}
	open := func(v string) *frame {
		seen[v] = true
		succ, _ := g.NeighborIDs(v)
		return &frame{v: v, succ: succ}
	}

	frames := []*frame{open(root)}
	for len(frames) > 0 {
		f := frames[len(frames)-1]
		if f.pos < len(f.succ) {
			w := f.succ[f.pos]
			f.pos++
			if !seen[w] {
				frames = append(frames, open(w))
			}
			continue
		}
		frames = frames[:len(frames)-1]
		*out = append(*out, f.v)
	}
}

// collect gathers every vertex reachable from root in rev that has not
// been claimed by an earlier component.
func collect(rev *core.Graph, root string, assigned map[string]bool) []string {
	var comp []string
	stack := []string{root}
	assigned[root] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, v)
		succ, _ := rev.NeighborIDs(v)
		for _, w := range succ {
			if !assigned[w] {
				assigned[w] = true
				stack = append(stack, w)
			}
		}
	}
	return comp
}
