// Package gryph is an in-memory graph algorithms engine: a small, composable
// set of packages for building graphs and running the classic traversal,
// shortest-path, spanning-tree, connectivity, and flow algorithms on them.
//
// What gryph gives you:
//
//   - core:          Graph, Vertex and Edge primitives with thread-safe mutation
//   - bfs / dfs:     traversal engines (visit order, parents, depths, path recovery)
//   - dijkstra:      single-source shortest paths for non-negative weights
//   - bellmanford:   single-source shortest paths with negative-cycle detection
//   - floydwarshall: all-pairs shortest paths over a dense distance matrix
//   - prim_kruskal:  minimum spanning trees and forests
//   - scc:           strongly connected components (Tarjan, Kosaraju)
//   - cut:           articulation points and bridges
//   - coloring:      bipartite checks and greedy vertex coloring
//   - flow:          max flow (Ford-Fulkerson, Edmonds-Karp, Dinic)
//   - dsu:           disjoint-set (union-find) utility
//   - builder:       deterministic graph generators for tests and examples
//
// Design rules shared by every package:
//
//   - A Graph is built once, then treated as read-only input. No algorithm
//     mutates the graph it is given; per-run state (visited sets, distance
//     maps, residual capacities) is owned by the call and discarded on return.
//   - Results are deterministic: vertex iteration is sorted, adjacency is
//     ordered by edge insertion, and ties break the same way every run.
//   - Failures surface as sentinel errors matched with errors.Is, never as
//     panics or silently wrong answers. A negative cycle, an unsortable
//     cyclic digraph, or a disconnected MST input each have their own error.
//   - Long computations accept a context.Context for cancellation via the
//     package's WithContext option.
//
// Pure Go, no cgo, no dependencies outside the standard library (testify is
// used in tests only).
package gryph
