package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gryphlib/gryph/core"
)

// Sentinel errors matched by callers via errors.Is.
var (
	// ErrTooFewVertices indicates a constructor received a size below
	// its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// WeightFunc supplies the weight of the edge u→v as it is created.
type WeightFunc func(u, v string) int64

// Config is the resolved builder configuration shared by every
// constructor in one Build call.
type Config struct {
	// Prefix is prepended to generated vertex IDs; default "v".
	Prefix string

	// Weight supplies edge weights on weighted graphs; default
	// constant 1.
	Weight WeightFunc

	// Rand is the seeded source used by random constructors.
	Rand *rand.Rand
}

// Option mutates Config.
type Option func(*Config)

// WithVertexPrefix changes the generated-ID prefix.
func WithVertexPrefix(p string) Option {
	return func(c *Config) {
		if p != "" {
			c.Prefix = p
		}
	}
}

// WithWeightFunc installs a per-edge weight supplier.
func WithWeightFunc(fn WeightFunc) Option {
	return func(c *Config) {
		if fn != nil {
			c.Weight = fn
		}
	}
}

// WithSeed reseeds the random source; the default seed is 1.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Rand = rand.New(rand.NewSource(seed)) }
}

// Constructor applies one deterministic mutation to the graph under
// construction.
type Constructor func(g *core.Graph, cfg Config) error

// Build creates a graph with gopts, resolves bopts once, and applies
// every constructor in order. The first constructor error aborts the
// build.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := Config{
		Prefix: "v",
		Weight: func(_, _ string) int64 { return 1 },
		Rand:   rand.New(rand.NewSource(1)),
	}
	for _, fn := range bopts {
		fn(&cfg)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilConstructor, i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	return g, nil
}

// id formats the i-th generated vertex ID; zero-padding keeps sorted
// order aligned with generation order.
func (c Config) id(i int) string {
	return fmt.Sprintf("%s%04d", c.Prefix, i)
}

// connect adds u→v with the configured weight (0 when unweighted).
func (c Config) connect(g *core.Graph, u, v string) error {
	var w int64
	if g.Weighted() {
		w = c.Weight(u, v)
	}
	_, err := g.AddEdge(u, v, w)
	return err
}

// Path chains n vertices v0000—v0001—…; n >= 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("%w: path needs >= 2, got %d", ErrTooFewVertices, n)
		}
		for i := 0; i < n-1; i++ {
			if err := cfg.connect(g, cfg.id(i), cfg.id(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle closes a Path back onto its first vertex; n >= 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs >= 3, got %d", ErrTooFewVertices, n)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		return cfg.connect(g, cfg.id(n-1), cfg.id(0))
	}
}

// Complete joins every vertex pair; n >= 2.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("%w: complete needs >= 2, got %d", ErrTooFewVertices, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.connect(g, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Star joins a hub to n-1 leaves; n >= 2. The hub is the first
// generated vertex.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("%w: star needs >= 2, got %d", ErrTooFewVertices, n)
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if err := cfg.connect(g, hub, cfg.id(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid lays out rows×cols vertices with 4-neighbor lattice edges; both
// dimensions >= 1 and at least two cells total. Vertex IDs read
// "<prefix><row>x<col>".
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("%w: grid needs >= 2 cells, got %dx%d",
				ErrTooFewVertices, rows, cols)
		}
		cell := func(r, c int) string {
			return fmt.Sprintf("%s%03dx%03d", cfg.Prefix, r, c)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.connect(g, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.connect(g, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// CompleteBipartite joins every left vertex to every right vertex;
// both sides >= 1. Left IDs use prefix "l", right "r", under the
// configured prefix.
func CompleteBipartite(left, right int) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if left < 1 || right < 1 {
			return fmt.Errorf("%w: bipartite needs both sides >= 1, got %d/%d",
				ErrTooFewVertices, left, right)
		}
		for i := 0; i < left; i++ {
			for j := 0; j < right; j++ {
				u := fmt.Sprintf("%sl%04d", cfg.Prefix, i)
				v := fmt.Sprintf("%sr%04d", cfg.Prefix, j)
				if err := cfg.connect(g, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomSparse adds each of the n·(n-1)/2 candidate edges independently
// with probability p, drawing from the seeded source. Vertices are
// added even when no edge lands on them.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("%w: random sparse needs >= 2, got %d", ErrTooFewVertices, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.Rand.Float64() < p {
					if err := cfg.connect(g, cfg.id(i), cfg.id(j)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
