// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm, the negative-weight-tolerant counterpart to
// package dijkstra.
//
// What
//
//   - BellmanFord(g, source, opts...) relaxes every edge up to |V|-1 times,
//     which is enough for any shortest path (at most |V|-1 edges long),
//     then runs one extra detection pass: if any edge still relaxes, a
//     negative cycle is reachable from the source and ErrNegativeCycle is
//     returned instead of the (meaningless) distances.
//   - Passes stop early as soon as one makes no change; the detection pass
//     is then free.
//   - On undirected graphs each edge relaxes in both directions, so any
//     reachable negative undirected edge is itself a negative cycle and is
//     reported as such.
//
// Numeric safety
//
//	A relaxation never starts from an Unreachable (infinite) distance, so
//	the int64 arithmetic cannot overflow off the sentinel.
//
// Complexity (V vertices, E edges)
//
//   - Time:   O(V · E)
//   - Memory: O(V).
//
// Errors
//
//   - ErrNilGraph, ErrSourceNotFound, ErrUnweightedGraph for invalid input.
//   - ErrNegativeCycle when a negative cycle is reachable from the source.
//   - ErrNoPath from Result.PathTo for unreachable destinations.
package bellmanford
