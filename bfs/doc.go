// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, unweighted shortest-path distances, and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex. Each reachable vertex is visited exactly once; unreachable
//     vertices never appear in the result.
//   - Result carries:
//   - Order:  visit sequence
//   - Depth:  vertex → distance in edges from the start
//   - Parent: vertex → predecessor in the BFS tree
//   - Result.PathTo reconstructs a minimum-edge-count path via Parent.
//   - Hooks (OnEnqueue, OnDequeue, OnVisit), neighbor filtering, a depth
//     limit, and context cancellation are available as functional options.
//
// Why
//
//	BFS is the unweighted shortest-path primitive and the layering
//	foundation for connectivity counting, bipartite checks, and
//	shortest-augmenting-path max flow.
//
// Correctness invariant
//
//	The first time a vertex is dequeued, the path reconstructed through
//	Parent has minimum edge count among all paths from the start. Tests
//	pin this property, not one specific visit order.
//
// Determinism
//
//	core.Graph returns neighbors in edge insertion order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V vertices, E edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth, Parent, and visited set.
//
// Errors
//
//   - ErrNilGraph             nil graph pointer.
//   - ErrStartVertexNotFound  start vertex absent from the graph.
//   - ErrWeightedGraph        BFS distances are edge counts; run the
//     shortest-path packages on weighted graphs instead.
//   - ErrOptionViolation      invalid option value (negative MaxDepth).
//   - context and hook errors propagate as returned.
package bfs
