package prim_kruskal

import (
	"container/heap"

	"github.com/gryphlib/gryph/core"
)

// Prim computes a minimum spanning tree of an undirected weighted graph
// by growing outward from root: the cheapest edge crossing the frontier
// is accepted until every vertex is inside.
//
// Returns ErrNilGraph, ErrDirectedGraph, ErrUnweightedGraph on bad
// input; ErrEmptyRoot or core.ErrVertexNotFound for a bad root;
// ErrDisconnected when some vertex is unreachable from root and
// WithForest was not given. With WithForest the result spans the root's
// component only.
func Prim(g *core.Graph, root string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, core.ErrVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{Edges: []core.Edge{}}
	if n <= 1 {
		return res, nil
	}

	visited := make(map[string]bool, n)
	pq := &candidateHeap{}
	heap.Init(pq)

	visited[root] = true
	if err := pushFrontier(g, pq, root, visited); err != nil {
		return nil, err
	}

	for pq.Len() > 0 && len(res.Edges) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			// Stale entry; c.to joined through a cheaper edge.
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		visited[c.to] = true
		res.Edges = append(res.Edges, *c.edge)
		res.Weight += c.edge.Weight
		if err := pushFrontier(g, pq, c.to, visited); err != nil {
			return nil, err
		}
	}

	if !o.Forest && len(res.Edges) < n-1 {
		return nil, ErrDisconnected
	}
	return res, nil
}

// pushFrontier offers every edge leaving v toward an unvisited vertex.
func pushFrontier(g *core.Graph, pq *candidateHeap, v string, visited map[string]bool) error {
	edges, err := g.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if far := e.Other(v); !visited[far] {
			heap.Push(pq, candidate{edge: e, to: far, ord: pq.seq})
			pq.seq++
		}
	}
	return nil
}

// candidate is a frontier-crossing edge with its far endpoint resolved.
type candidate struct {
	edge *core.Edge
	to   string
	ord  uint64
}

// candidateHeap is a min-heap by weight; ord breaks ties by push order
// so equal-weight edges resolve deterministically.
type candidateHeap struct {
	items []candidate
	seq   uint64
}

func (h candidateHeap) Len() int { return len(h.items) }

func (h candidateHeap) Less(i, j int) bool {
	if h.items[i].edge.Weight != h.items[j].edge.Weight {
		return h.items[i].edge.Weight < h.items[j].edge.Weight
	}
	return h.items[i].ord < h.items[j].ord
}

func (h candidateHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *candidateHeap) Push(x any) { h.items = append(h.items, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := h.items
	n := len(old)
	c := old[n-1]
	h.items = old[:n-1]
	return c
}
