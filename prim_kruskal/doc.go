// Package prim_kruskal computes minimum spanning trees of undirected
// weighted graphs, offering both classic algorithms behind one Result
// shape.
//
// What
//
//	Kruskal(g, opts...) sorts every edge by weight and merges components
//	through a disjoint-set union until the tree spans the graph.
//	Prim(g, root, opts...) grows the tree outward from root through an
//	edge min-heap. Both return *Result{Edges, Weight}.
//
// Choosing
//
//	Kruskal shines on sparse graphs and is the natural fit for forest
//	mode; Prim is competitive on dense graphs and when a specific root
//	component is all you care about.
//
// Forest mode
//
//	By default a disconnected graph yields ErrDisconnected. With
//	WithForest, Kruskal returns the minimum spanning forest across all
//	components, while Prim spans only the root's component. The
//	asymmetry is inherent: Prim has no seed in components the root
//	cannot reach.
//
// Determinism
//
//	Equal-weight edges tie-break by insertion order (stable sort in
//	Kruskal; first-pushed-wins in Prim's heap), so results are stable
//	for a given construction sequence. Self-loops are skipped; of a
//	parallel bundle only the lightest member can be chosen.
//
// Errors
//
//	ErrNilGraph, ErrDirectedGraph, ErrUnweightedGraph - validation
//	ErrDisconnected - spanning tree impossible without WithForest
//	ErrEmptyRoot, core.ErrVertexNotFound - bad Prim root
//
// Complexity: O(E log E) for Kruskal, O(E log V) for Prim.
package prim_kruskal
