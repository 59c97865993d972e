// Cycle existence checks for directed and undirected graphs.
//
// Directed graphs use three-color DFS: meeting an InProgress vertex over an
// outgoing edge is a back edge, hence a cycle. Undirected graphs use DFS
// that remembers the edge it arrived by, so walking back over the same
// logical edge is not a cycle but any other meeting of a visited vertex is;
// tracking the edge ID rather than the parent vertex makes parallel edges
// count as the 2-cycles they are.
package dfs

import (
	"github.com/gryphlib/gryph/core"
	"github.com/gryphlib/gryph/dsu"
)

// HasCycle reports whether g contains at least one cycle, dispatching on
// the graph's directedness. Self-loops count as cycles in both modes.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if g.Directed() {
		return hasCycleDirected(g)
	}

	return hasCycleUndirected(g)
}

// HasCycleUnionFind reports cycle existence in an undirected graph by
// union-joining every edge: an edge whose endpoints are already connected
// closes a cycle. Equivalent to HasCycle for undirected input and cheaper
// in practice on dense graphs; returns ErrDirectedGraph otherwise.
//
// Complexity: O(E α(V)) time, O(V) memory.
func HasCycleUnionFind(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if g.Directed() {
		return false, ErrDirectedGraph
	}

	sets := dsu.New(g.Vertices()...)
	for _, e := range g.Edges() {
		if e.From == e.To {
			return true, nil
		}
		if !sets.Union(e.From, e.To) {
			return true, nil
		}
	}

	return false, nil
}

// cycleFrame is one suspended vertex visit during cycle detection.
type cycleFrame struct {
	id   string
	via  string // edge ID used to arrive; empty for roots
	next int
	out  []*core.Edge
}

// hasCycleDirected runs three-color DFS from every unvisited vertex.
func hasCycleDirected(g *core.Graph) (bool, error) {
	state := make(map[string]VertexState, g.VertexCount())

	for _, root := range g.Vertices() {
		if state[root] != Unvisited {
			continue
		}
		f, err := openCycleFrame(g, root, "")
		if err != nil {
			return false, err
		}
		state[root] = InProgress
		stack := []*cycleFrame{f}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next == len(top.out) {
				state[top.id] = Done
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.out[top.next]
			top.next++
			switch state[e.To] {
			case InProgress:
				// Back edge, including self-loops.
				return true, nil
			case Unvisited:
				child, err := openCycleFrame(g, e.To, e.ID)
				if err != nil {
					return false, err
				}
				state[e.To] = InProgress
				stack = append(stack, child)
			}
		}
	}

	return false, nil
}

// hasCycleUndirected runs DFS remembering the arrival edge per frame.
func hasCycleUndirected(g *core.Graph) (bool, error) {
	state := make(map[string]VertexState, g.VertexCount())

	for _, root := range g.Vertices() {
		if state[root] != Unvisited {
			continue
		}
		f, err := openCycleFrame(g, root, "")
		if err != nil {
			return false, err
		}
		state[root] = InProgress
		stack := []*cycleFrame{f}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next == len(top.out) {
				state[top.id] = Done
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.out[top.next]
			top.next++
			if e.ID == top.via {
				continue // the edge we arrived by is not a cycle
			}
			nbr := e.Other(top.id)
			if nbr == top.id {
				return true, nil // self-loop
			}
			if state[nbr] != Unvisited {
				// Undirected DFS has no cross edges: any revisit closes a cycle.
				return true, nil
			}
			child, err := openCycleFrame(g, nbr, e.ID)
			if err != nil {
				return false, err
			}
			state[nbr] = InProgress
			stack = append(stack, child)
		}
	}

	return false, nil
}

// openCycleFrame fetches the neighbor list of id and wraps it in a frame.
func openCycleFrame(g *core.Graph, id, via string) (*cycleFrame, error) {
	out, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return &cycleFrame{id: id, via: via, out: out}, nil
}
