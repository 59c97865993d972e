// Package cut finds the fragile spots of an undirected graph: the
// articulation points and bridges whose removal disconnects some
// component.
//
// What
//
//	Cut(g, opts...) runs one low-link DFS over every component and
//	returns both answers in a single *Result. ArticulationPoints and
//	Bridges are thin wrappers for callers who want only one side.
//
// Rules
//
//	A non-root vertex u is an articulation point when some DFS child v
//	satisfies low(v) >= disc(u); a root is one when it has two or more
//	DFS children. An edge is a bridge when low(v) > disc(u). The walk
//	skips only the exact arrival edge, not all edges to the parent, so
//	a parallel bundle between two vertices is correctly never a bridge.
//	Self-loops affect nothing.
//
// Determinism
//
//	Components are rooted in sorted vertex order and neighbors expand
//	in insertion order. Result.Points is sorted ascending;
//	Result.Bridges follows edge insertion order.
//
// Errors
//
//	ErrNilGraph       - g is nil
//	ErrDirectedGraph  - cut structure is an undirected notion
//
// Complexity: O(V + E) time and memory. The DFS keeps an explicit frame
// stack, so deep graphs cannot overflow the goroutine stack.
package cut
