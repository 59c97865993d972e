package flow

import (
	"github.com/gryphlib/gryph/core"
)

// Dinic computes the maximum source→sink flow in phases: each phase
// builds a BFS level graph over the residual network, then saturates it
// with a blocking flow before re-leveling. O(V²·E) worst case and the
// fastest of the package's algorithms in practice.
//
// See the package doc for validation errors.
func Dinic(g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
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
		level, ok := n.levels(source, sink)
		if !ok {
			break
		}
		// next[u] survives across pushes within one phase: an arc that
		// failed once stays dead until the next re-leveling.
		next := make(map[string]int, len(n.adj))
		for {
			pushed := n.blocking(source, sink, level, next)
			if pushed == 0 {
				break
			}
			value += pushed
		}
	}
	return n.result(value, source), nil
}

// levels BFS-labels vertices with their residual hop distance from
// source; ok is false once the sink is unreachable.
func (n *network) levels(source, sink string) (map[string]int, bool) {
	level := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if _, seen := level[v]; seen || n.residual(u, v) <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}
	_, ok := level[sink]
	return level, ok
}

// blocking pushes one augmenting path that strictly descends the level
// graph, returning the bottleneck moved (0 when the phase is spent).
func (n *network) blocking(source, sink string, level map[string]int, next map[string]int) int64 {
	parent := make(map[string]string)
	stack := []string{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if u == sink {
			return n.augment(parent, source, sink)
		}
		advanced := false
		for next[u] < len(n.adj[u]) {
			v := n.adj[u][next[u]]
			if n.residual(u, v) > 0 && level[v] == level[u]+1 {
				parent[v] = u
				stack = append(stack, v)
				advanced = true
				break
			}
			next[u]++
		}
		if !advanced {
			// u is exhausted for this phase; retreat.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				p := stack[len(stack)-1]
				next[p]++
			}
		}
	}
	return 0
}
