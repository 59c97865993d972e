// Package scc decomposes a directed graph into its strongly connected
// components: maximal vertex sets where every vertex reaches every
// other.
//
// What
//
//	Tarjan(g, opts...) runs a single low-link DFS pass with an explicit
//	frame stack, so deep graphs cannot overflow the goroutine stack.
//	Kosaraju(g, opts...) runs two plain DFS passes, the second over the
//	graph's transpose. Both return the identical *Result.
//
// Determinism
//
//	Vertices inside a component are sorted ascending, and components
//	are ordered by their smallest member, so the two algorithms (and
//	repeat runs) produce byte-identical results on the same graph.
//	Result.ComponentOf maps each vertex to its component's position in
//	that ordering.
//
// Errors
//
//	ErrNilGraph         - g is nil
//	ErrUndirectedGraph  - strong connectivity needs edge direction
//
// Complexity: O(V + E) for both; Kosaraju additionally materializes the
// transpose, doubling memory.
package scc
