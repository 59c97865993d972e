// Package coloring assigns colors to vertices of an undirected graph so
// that no edge joins two vertices of the same color.
//
// What
//
//	Bipartite(g, opts...) two-colors the graph via BFS layer parity
//	over every component, returning the sides in a *Bipartition;
//	IsBipartite folds that into a plain bool. Greedy(g, opts...) produces a
//	proper coloring by scanning vertices in sorted order and giving each
//	the smallest color unused among its already-colored neighbors; the
//	palette is small in practice but not guaranteed minimal.
//
// Determinism
//
//	Both walks seed components in sorted vertex order and expand
//	neighbors in insertion order, so colors are stable across runs.
//
// Errors
//
//	ErrNilGraph      - g is nil
//	ErrDirectedGraph - coloring here is an undirected notion
//	ErrOddCycle      - IsBipartite found a conflict (odd cycle)
//
// Complexity: O(V + E) for IsBipartite; O(V + E) plus neighbor-palette
// scans for Greedy.
package coloring
