// Package floydwarshall computes all-pairs shortest paths over a weighted
// *core.Graph via the classic dynamic-programming recurrence.
//
// What
//
//	FloydWarshall(g, opts...) returns a *Result holding a dense distance
//	table Dist[from][to] for every ordered vertex pair, plus a next-hop
//	table for path reconstruction. Negative edge weights are permitted;
//	a negative cycle anywhere in the graph aborts the run with
//	ErrNegativeCycle.
//
// Why
//
//	When many source/destination pairs are queried against the same
//	graph, one O(V³) sweep beats |V| separate single-source runs, and it
//	tolerates negative edges where Dijkstra cannot.
//
// Complexity
//
//	Time O(V³), memory O(V²). Suitable for dense or small graphs; prefer
//	dijkstra or bellmanford for a single source on large sparse inputs.
//
// Errors
//
//	ErrNilGraph        - g is nil
//	ErrUnweightedGraph - graph was built without WithWeighted
//	ErrNegativeCycle   - some cycle has negative total weight
//	ErrNoPath          - Result.Path for an unreachable pair
//
// Determinism
//
//	The vertex index is core.Graph.Vertices order (sorted), so the
//	tables and reconstructed paths are stable across runs.
package floydwarshall
