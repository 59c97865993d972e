package scc

import (
	"github.com/gryphlib/gryph/core"
)

// Condensation collapses each strongly connected component of g into a
// single vertex and returns the resulting DAG alongside the
// decomposition it was built from. A condensation vertex is named after
// its component's smallest member; duplicate inter-component arcs are
// merged and intra-component arcs dropped.
//
// Returns ErrNilGraph, ErrUndirectedGraph, or the options context error.
func Condensation(g *core.Graph, opts ...Option) (*core.Graph, *Result, error) {
	res, err := Tarjan(g, opts...)
	if err != nil {
		return nil, nil, err
	}

	dag := core.NewGraph(core.WithDirected(true))
	for _, comp := range res.Components {
		if err := dag.AddVertex(comp[0]); err != nil {
			return nil, nil, err
		}
	}

	linked := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		cu := res.Components[res.ComponentOf[e.From]][0]
		cv := res.Components[res.ComponentOf[e.To]][0]
		if cu == cv || linked[[2]string{cu, cv}] {
			continue
		}
		linked[[2]string{cu, cv}] = true
		if _, err := dag.AddEdge(cu, cv, 0); err != nil {
			return nil, nil, err
		}
	}
	return dag, res, nil
}
