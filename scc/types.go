package scc

import (
	"context"
	"errors"
	"sort"
)

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrUndirectedGraph indicates the graph is undirected; every
	// connected component would trivially be strongly connected.
	ErrUndirectedGraph = errors.New("scc: graph must be directed")
)

// Options configures a decomposition run.
type Options struct {
	// Ctx is polled once per root vertex; nil means Background.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext installs a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is a strongly-connected-component decomposition.
type Result struct {
	// Components holds each component's vertices sorted ascending;
	// components are ordered by their smallest member.
	Components [][]string

	// ComponentOf maps a vertex ID to its index in Components.
	ComponentOf map[string]int
}

// normalize sorts raw components into the documented canonical order
// and rebuilds the vertex index.
func normalize(raw [][]string) *Result {
	for _, comp := range raw {
		sort.Strings(comp)
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i][0] < raw[j][0] })

	res := &Result{Components: raw, ComponentOf: make(map[string]int)}
	for i, comp := range raw {
		for _, v := range comp {
			res.ComponentOf[v] = i
		}
	}
	return res
}
