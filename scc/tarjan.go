package scc

import (
	"github.com/gryphlib/gryph/core"
)

// Tarjan decomposes a directed graph into strongly connected components
// in one low-link DFS pass. The walk keeps its own frame stack, so
// recursion depth is bounded by constant goroutine stack use regardless
// of graph shape.
//
// Returns ErrNilGraph, ErrUndirectedGraph, or the options context error.
func Tarjan(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	t := &tarjanWalker{
		g:       g,
		index:   make(map[string]int, g.VertexCount()),
		low:     make(map[string]int, g.VertexCount()),
		onStack: make(map[string]bool, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if _, seen := t.index[v]; !seen {
			if err := t.run(v); err != nil {
				return nil, err
			}
		}
	}
	return normalize(t.comps), nil
}

type tarjanWalker struct {
	g       *core.Graph
	next    int
	index   map[string]int
	low     map[string]int
	stack   []string
	onStack map[string]bool
	comps   [][]string
}

// tarjanFrame is one suspended visit: succ holds v's out-neighbors and
// pos the next one to examine when the frame resumes.
type tarjanFrame struct {
	v    string
	succ []string
	pos  int
}

func (t *tarjanWalker) run(root string) error {
	frames := []*tarjanFrame{t.open(root)}
	for len(frames) > 0 {
		f := frames[len(frames)-1]
		if f.pos < len(f.succ) {
			w := f.succ[f.pos]
			f.pos++
			if _, seen := t.index[w]; !seen {
				nf := t.open(w)
				frames = append(frames, nf)
			} else if t.onStack[w] {
				if t.index[w] < t.low[f.v] {
					t.low[f.v] = t.index[w]
				}
			}
			continue
		}

		// All successors examined: close the frame.
		frames = frames[:len(frames)-1]
		if t.low[f.v] == t.index[f.v] {
			t.emit(f.v)
		}
		if len(frames) > 0 {
			if p := frames[len(frames)-1]; t.low[f.v] < t.low[p.v] {
				t.low[p.v] = t.low[f.v]
			}
		}
	}
	return nil
}

// open assigns v its discovery index, pushes it on the component stack,
// and builds its frame.
func (t *tarjanWalker) open(v string) *tarjanFrame {
	t.index[v] = t.next
	t.low[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	succ, _ := t.g.NeighborIDs(v)
	return &tarjanFrame{v: v, succ: succ}
}

// emit pops the component rooted at v off the stack.
func (t *tarjanWalker) emit(v string) {
	var comp []string
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		comp = append(comp, top)
		if top == v {
			break
		}
	}
	t.comps = append(t.comps, comp)
}
