// Package flow computes maximum flow through a weighted graph whose
// edge weights are read as capacities.
//
// What
//
//	FordFulkerson(g, source, sink, opts...) augments along DFS paths,
//	EdmondsKarp along BFS-shortest paths, Dinic along a level graph
//	with blocking flows. All three share one residual representation
//	and return the identical *Result{Value, Flow, MinCut}.
//
// Model
//
//	Capacities are int64; parallel edges aggregate, self-loops are
//	ignored, and an undirected edge carries its capacity in both
//	directions. A negative weight anywhere is rejected eagerly with
//	ErrNegativeCapacity before any augmentation happens.
//
// Choosing
//
//	Ford-Fulkerson is the simplest and fine on small integral networks;
//	Edmonds-Karp bounds augmentations at O(V·E); Dinic is the fastest
//	of the three on larger or denser networks, O(V²·E) worst case and
//	far better in practice.
//
// Determinism
//
//	Residual neighbors are scanned in sorted order, so augmenting paths
//	(and therefore the per-edge Flow split, though never the Value) are
//	stable across runs.
//
// Errors
//
//	ErrNilGraph, ErrUnweightedGraph             - validation
//	ErrSourceNotFound, ErrSinkNotFound          - unknown endpoints
//	ErrSameEndpoints                            - source == sink
//	ErrNegativeCapacity                         - negative edge weight
package flow
