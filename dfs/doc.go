// Package dfs implements depth-first search on a core.Graph, plus the two
// structure queries that fall directly out of it: cycle detection and
// topological sorting.
//
// What
//
//   - DFS(g, startID, opts...): traversal from a root, or over the whole
//     forest with WithFullTraversal. The default engine is iterative with
//     an explicit frame stack, so deep or skewed graphs cannot overflow
//     the goroutine stack; WithRecursive selects the classic recursive
//     formulation for shallow inputs.
//   - HasCycle(g): cycle existence for directed graphs (three-color DFS,
//     back edge = cycle) and undirected graphs (DFS that tracks the
//     arriving edge ID, so a parallel edge counts but plain backtracking
//     does not). HasCycleUnionFind is a DSU-based alternative for
//     undirected graphs.
//   - TopologicalSort(g): DFS postorder reversed; KahnSort(g): repeated
//     removal of in-degree-zero vertices. Both fail with ErrCycleDetected
//     on cyclic input; Kahn's early-drained queue is the authoritative
//     "no valid ordering exists" signal.
//
// Visit order
//
//	The iterative engine expands neighbors in the graph's insertion order
//	(frames remember their position in the neighbor list), so it produces
//	the same preorder as the recursive engine and both runs are
//	reproducible. Callers should still only rely on "parent before child",
//	which is what the tests pin.
//
// Per-run state
//
//	Vertex colors, parents, depths, and stacks are owned by each call and
//	released when it returns; nothing is stored on the Graph.
//
// Complexity (V vertices, E edges)
//
//   - Time:   O(V + E) for every entry point.
//   - Memory: O(V).
//
// Errors
//
//   - ErrNilGraph, ErrStartVertexNotFound for invalid input.
//   - ErrCycleDetected from TopologicalSort and KahnSort on cyclic graphs.
//   - ErrUndirectedGraph when a sort is asked of an undirected graph.
//   - context and hook errors propagate as returned.
package dfs
