// Package builder assembles deterministic graph fixtures from small
// composable constructors.
//
// What
//
//	Build(gopts, bopts, cons...) creates a fresh *core.Graph with the
//	given graph options, resolves the builder options once, and applies
//	each Constructor in order. Constructors cover the standard shapes:
//	Path, Cycle, Complete, Star, Grid, CompleteBipartite, RandomSparse.
//
// Determinism
//
//	Identical options, seed, and constructor order produce identical
//	graphs. RandomSparse draws from a seeded source, so even "random"
//	fixtures replay byte-for-byte.
//
// Weights
//
//	WithWeightFunc supplies per-edge weights on weighted graphs; the
//	default is weight 1. Unweighted graphs always receive weight 0,
//	whatever the function says.
package builder
