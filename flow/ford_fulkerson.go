package flow

import (
	"github.com/gryphlib/gryph/core"
)

// FordFulkerson computes the maximum source→sink flow by repeatedly
// augmenting along depth-first residual paths until none remains.
//
// Capacities are integral, so termination is guaranteed; the number of
// augmentations is bounded by the max-flow value. See the package doc
// for validation errors.
func FordFulkerson(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n, err := buildNetwork(g, source, sink)
	if err != nil {
		return nil, err
	}

	var value int64
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		parent, found := n.dfsPath(source, sink)
		if !found {
			break
		}
		value += n.augment(parent, source, sink)
	}
	return n.result(value, source), nil
}

// dfsPath searches for any residual path source→sink with an explicit
// stack, scanning neighbors in sorted order. It returns parent pointers
// for the found path.
func (n *network) dfsPath(source, sink string) (map[string]string, bool) {
	parent := make(map[string]string)
	visited := map[string]bool{source: true}
	stack := []string{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range n.adj[u] {
			if visited[v] || n.residual(u, v) <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent, true
			}
			stack = append(stack, v)
		}
	}
	return nil, false
}
