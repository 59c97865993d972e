// Mutating operations on Graph: vertex and edge insertion and removal.
// All methods take the write lock; reads live in queries.go.
package core

import "strconv"

const edgeIDPrefix = "e"

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// AddEdge creates an edge from→to with the given weight and returns its ID.
// Missing endpoints are created implicitly, matching the build-phase
// contract that an edge reference is enough to introduce a vertex.
//
// Returns ErrEmptyVertexID, ErrBadWeight (non-zero weight on an unweighted
// graph), ErrLoopNotAllowed, or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if bucket, ok := g.adj[from][to]; ok && len(bucket) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextSeq++
	e := &Edge{
		ID:     edgeIDPrefix + strconv.FormatUint(g.nextSeq, 10),
		From:   from,
		To:     to,
		Weight: weight,
		seq:    g.nextSeq,
	}
	g.edges[e.ID] = e

	g.indexLocked(from, to, e.ID)
	if !g.directed && from != to {
		g.indexLocked(to, from, e.ID)
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID, including its mirrored
// adjacency entry on undirected graphs.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.unindexLocked(e)

	return nil
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(E) worst case (scan of the edge catalog).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			delete(g.edges, eid)
			g.unindexLocked(e)
		}
	}
	delete(g.adj, id)
	delete(g.vertices, id)

	return nil
}

// addVertexLocked registers id and its adjacency slot. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	if g.adj[id] == nil {
		g.adj[id] = make(map[string]map[string]struct{})
	}
}

// indexLocked records edge id under adj[from][to]. Caller holds mu.
func (g *Graph) indexLocked(from, to, eid string) {
	if g.adj[from] == nil {
		g.adj[from] = make(map[string]map[string]struct{})
	}
	if g.adj[from][to] == nil {
		g.adj[from][to] = make(map[string]struct{})
	}
	g.adj[from][to][eid] = struct{}{}
}

// unindexLocked removes edge e from both adjacency orientations,
// pruning empty buckets. Caller holds mu.
func (g *Graph) unindexLocked(e *Edge) {
	g.dropIndexLocked(e.From, e.To, e.ID)
	if !g.directed && e.From != e.To {
		g.dropIndexLocked(e.To, e.From, e.ID)
	}
}

func (g *Graph) dropIndexLocked(from, to, eid string) {
	bucket := g.adj[from][to]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adj[from], to)
	}
}
