// Package core defines the central Graph, Vertex and Edge primitives that
// every algorithm package in gryph consumes.
//
// What
//
//   - Graph: an adjacency-list graph over string vertex IDs, configured at
//     construction time as directed or undirected, weighted or unweighted,
//     with or without self-loops and parallel edges.
//   - Edge: one logical connection From→To with an int64 Weight. In an
//     undirected graph the same Edge is registered under both endpoints;
//     it is one edge, not two.
//   - Mutation: AddVertex and AddEdge during the build phase (AddEdge
//     creates missing endpoints implicitly), RemoveVertex and RemoveEdge
//     for corrections.
//   - Queries: Neighbors, NeighborIDs, Vertices, Edges, HasVertex, HasEdge,
//     counts, and Clone / CloneEmpty for derived working copies.
//
// Lifecycle
//
//	A Graph is built once and then handed to algorithm packages as
//	read-only input. No algorithm in gryph mutates the graph it is given;
//	the flow package, which needs mutable capacities, works on its own
//	derived residual structure. Because of that, any number of algorithms
//	may run concurrently against the same built Graph.
//
// Concurrency
//
//	All methods are safe for concurrent use: an RWMutex guards the vertex,
//	edge, and adjacency maps, so the build phase itself may be spread
//	across goroutines.
//
// Determinism
//
//	Vertices() returns IDs in sorted order; Neighbors() and Edges() return
//	edges in insertion order. Every algorithm package leans on these
//	guarantees to produce reproducible results.
//
// Errors
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - operation referenced an unknown vertex.
//	ErrEdgeNotFound        - operation referenced an unknown edge.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop without WithLoops.
//	ErrMultiEdgeNotAllowed - parallel edge without WithMultiEdges.
package core
