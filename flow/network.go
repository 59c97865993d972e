package flow

import (
	"fmt"
	"sort"

	"github.com/gryphlib/gryph/core"
)

// network is the residual representation shared by every algorithm:
// aggregated capacities plus a sorted adjacency index covering both
// forward arcs and their (initially empty) reverses.
type network struct {
	cap   map[string]map[string]int64
	resid map[string]map[string]int64
	adj   map[string][]string
}

// buildNetwork validates g and the endpoints, then aggregates edge
// weights into capacities. Parallel edges sum; self-loops are dropped;
// an undirected edge contributes capacity in both directions.
func buildNetwork(g *core.Graph, source, sink string) (*network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}

	n := &network{
		cap:   make(map[string]map[string]int64),
		resid: make(map[string]map[string]int64),
		adj:   make(map[string][]string),
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %q->%q weight %d",
				ErrNegativeCapacity, e.From, e.To, e.Weight)
		}
		if e.From == e.To {
			continue
		}
		n.addCap(e.From, e.To, e.Weight)
		if !g.Directed() {
			n.addCap(e.To, e.From, e.Weight)
		}
	}

	// Ensure reverse arcs exist in the adjacency index so residual
	// walks can undo flow, then freeze a sorted scan order.
	seen := make(map[string]map[string]bool)
	mark := func(u, v string) {
		if seen[u] == nil {
			seen[u] = make(map[string]bool)
		}
		if !seen[u][v] {
			seen[u][v] = true
			n.adj[u] = append(n.adj[u], v)
		}
	}
	for u, inner := range n.cap {
		for v := range inner {
			mark(u, v)
			mark(v, u)
		}
	}
	for u := range n.adj {
		sort.Strings(n.adj[u])
	}
	return n, nil
}

func (n *network) addCap(u, v string, c int64) {
	if n.cap[u] == nil {
		n.cap[u] = make(map[string]int64)
		n.resid[u] = make(map[string]int64)
	}
	n.cap[u][v] += c
	n.resid[u][v] += c
}

// residual reports the remaining capacity of arc u→v.
func (n *network) residual(u, v string) int64 {
	return n.resid[u][v]
}

// push moves f units along u→v, opening the reverse arc.
func (n *network) push(u, v string, f int64) {
	if n.resid[u] == nil {
		n.resid[u] = make(map[string]int64)
	}
	if n.resid[v] == nil {
		n.resid[v] = make(map[string]int64)
	}
	n.resid[u][v] -= f
	n.resid[v][u] += f
}

// augment walks parent pointers from sink back to source, pushing the
// bottleneck along the recorded path. parent[v] is the predecessor of v
// on the path.
func (n *network) augment(parent map[string]string, source, sink string) int64 {
	bottleneck := int64(0)
	for v := sink; v != source; v = parent[v] {
		r := n.residual(parent[v], v)
		if bottleneck == 0 || r < bottleneck {
			bottleneck = r
		}
	}
	for v := sink; v != source; v = parent[v] {
		n.push(parent[v], v, bottleneck)
	}
	return bottleneck
}

// result assembles the final Result: net positive flow per aggregated
// arc and the source side of the minimum cut.
func (n *network) result(value int64, source string) *Result {
	res := &Result{Value: value, Flow: make(map[string]map[string]int64)}
	for u, inner := range n.cap {
		for v, c := range inner {
			if f := c - n.resid[u][v]; f > 0 {
				if res.Flow[u] == nil {
					res.Flow[u] = make(map[string]int64)
				}
				res.Flow[u][v] = f
			}
		}
	}

	// Vertices still reachable through positive residual arcs form the
	// source side of a min cut.
	reach := map[string]bool{source: true}
	stack := []string{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range n.adj[u] {
			if !reach[v] && n.residual(u, v) > 0 {
				reach[v] = true
				stack = append(stack, v)
			}
		}
	}
	for v := range reach {
		res.MinCut = append(res.MinCut, v)
	}
	sort.Strings(res.MinCut)
	return res
}
