// Package dsu implements a disjoint-set (union-find) structure over string
// vertex IDs, with path compression on Find and union by rank on Union.
//
// What
//
//   - New(ids...) seeds one singleton set per ID; Add registers more later.
//   - Find returns the canonical representative of an element's set.
//   - Union merges two sets and reports whether a merge happened.
//   - Connected answers same-set queries; Count tracks the number of sets.
//
// Why
//
//	Kruskal's MST needs an "are these endpoints already connected" test per
//	edge, and undirected cycle checks reduce to the same question. Both the
//	prim_kruskal and dfs packages instantiate their own DSU per call; a DSU
//	is never shared across algorithm invocations.
//
// Complexity (n elements, m operations)
//
//   - Time:   O(m α(n)) amortized, effectively constant per operation.
//   - Memory: O(n).
//
// DSU is not safe for concurrent use; it is owned by a single algorithm
// call for its duration, matching the ownership rules of the rest of gryph.
package dsu
