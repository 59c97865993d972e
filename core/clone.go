package core

// CloneEmpty returns a new Graph with identical flags and the same vertex
// set, but no edges. Useful for building derived graphs (residual networks,
// transposes) without touching the original.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.optionsLocked()...)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adj[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: flags, vertices, edges, adjacency,
// and the edge ID sequence, so edge IDs match between original and copy.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.nextSeq = g.nextSeq
	for id, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, seq: e.seq}
		clone.edges[id] = ne
		clone.indexLocked(e.From, e.To, e.ID)
		if !g.directed && e.From != e.To {
			clone.indexLocked(e.To, e.From, e.ID)
		}
	}

	return clone
}

// Transpose returns a copy of a directed graph with every edge reversed.
// On an undirected graph it is equivalent to Clone.
// Complexity: O(V + E).
func (g *Graph) Transpose() *Graph {
	if !g.directed {
		return g.Clone()
	}
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.nextSeq = g.nextSeq
	for id, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight, seq: e.seq}
		clone.edges[id] = ne
		clone.indexLocked(ne.From, ne.To, ne.ID)
	}

	return clone
}

// optionsLocked rebuilds the GraphOption list matching g's flags.
// Caller holds at least the read lock.
func (g *Graph) optionsLocked() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}

	return opts
}
