package flow

import (
	"github.com/gryphlib/gryph/core"
)

// EdmondsKarp computes the maximum source→sink flow by augmenting along
// breadth-first (fewest-hop) residual paths, bounding the number of
// augmentations at O(V·E) independent of capacity magnitudes.
//
// See the package doc for validation errors.
func EdmondsKarp(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
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
		parent, found := n.bfsPath(source, sink)
		if !found {
			break
		}
		value += n.augment(parent, source, sink)
	}
	return n.result(value, source), nil
}

// bfsPath searches for a fewest-hop residual path source→sink, scanning
// neighbors in sorted order. It returns parent pointers for the found
// path.
func (n *network) bfsPath(source, sink string) (map[string]string, bool) {
	parent := make(map[string]string)
	visited := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if visited[v] || n.residual(u, v) <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent, true
			}
			queue = append(queue, v)
		}
	}
	return nil, false
}
