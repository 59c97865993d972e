// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm for weighted graphs with non-negative edge weights.
//
// What
//
//   - Dijkstra(g, source, opts...) returns a Result whose Dist map holds
//     the minimum cost from source to every vertex (Unreachable for
//     vertices no path reaches) and, with WithReturnPath, a Prev map for
//     path reconstruction via Result.PathTo.
//   - Vertices are finalized in order of increasing distance using a
//     min-heap with the lazy decrease-key strategy: an improvement pushes
//     a duplicate entry, and stale entries are filtered when popped by
//     checking the finalized set. Duplicates on the heap are expected;
//     filtering happens on pop, never on push.
//
// Preconditions
//
//	All edge weights must be non-negative; the full edge set is scanned
//	before any work starts and ErrNegativeWeight is returned eagerly.
//	Negative weights belong to the bellmanford package.
//
// Complexity (V vertices, E edges)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (heap may hold one entry per relaxation).
//
// Options
//
//   - WithReturnPath()      build the predecessor map.
//   - WithMaxDistance(d)    do not finalize vertices farther than d.
//   - WithContext(ctx)      cancellation.
//
// Errors
//
//   - ErrNilGraph, ErrSourceNotFound, ErrUnweightedGraph for invalid input.
//   - ErrNegativeWeight when any edge weight is negative.
//   - ErrNoPath from Result.PathTo for unreachable destinations.
package dijkstra
