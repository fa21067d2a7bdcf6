package traverse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for traversal.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("traverse: grid is nil")

	// ErrStartOutOfBounds is returned when the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("traverse: start position out of bounds")

	// ErrNoLoop is returned when the start tile has fewer than two confirmed
	// connectors, so no closed loop can pass through it.
	ErrNoLoop = errors.New("traverse: start tile does not close a loop")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNotReached is returned by PathTo for a position never visited.
	ErrNotReached = errors.New("traverse: position not reached")
)

// Option configures a traversal run.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks for a traversal run.
type Options struct {
	// OnVisit is called once per position when it is expanded, with its
	// distance from the start. A non-nil error aborts the run.
	OnVisit func(p pipegrid.Position, dist int) error

	// OnLayer is called after each frontier has been fully expanded, with the
	// layer's distance and the number of positions it held.
	OnLayer func(dist, size int)

	// MaxDepth, if > 0, stops discovery beyond this distance.
	MaxDepth int

	// Logger receives Debug records per layer. Defaults to a no-op logger.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no hooks, no depth limit and a no-op logger.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(pipegrid.Position, int) error { return nil },
		OnLayer: func(int, int) {},
		Logger:  logging.NewNop(),
	}
}

// WithOnVisit registers a callback run as each position is expanded.
func WithOnVisit(fn func(p pipegrid.Position, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnLayer registers a callback run after each completed layer.
func WithOnLayer(fn func(dist, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth stops discovery beyond distance d.
//
//	d > 0: limit to d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger sets the logger used for per-layer Debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a traversal.
// Distances and parents are dense arrays indexed like the grid; -1 marks
// an unvisited cell (or, for parents, the start).
type Result struct {
	grid   *pipegrid.Grid
	start  pipegrid.Position
	dist   []int
	parent []int
	// Order lists positions in discovery order, start first.
	Order []pipegrid.Position
	// Layers is the number of non-empty frontiers expanded, start layer included.
	Layers int
}

// Start returns the position the traversal began from.
func (r *Result) Start() pipegrid.Position { return r.start }

// Distance returns the recorded distance of p; ok is false if p was not reached.
func (r *Result) Distance(p pipegrid.Position) (d int, ok bool) {
	if !r.grid.InBounds(p) {
		return 0, false
	}
	d = r.dist[r.grid.Index(p)]
	return d, d >= 0
}

// Visited returns how many positions received a distance.
func (r *Result) Visited() int {
	return len(r.Order)
}

// Max returns the largest recorded distance.
func (r *Result) Max() int {
	m := 0
	for _, p := range r.Order {
		if d := r.dist[r.grid.Index(p)]; d > m {
			m = d
		}
	}
	return m
}

// Farthest returns every position at the maximum distance, in discovery order.
func (r *Result) Farthest() []pipegrid.Position {
	m := r.Max()
	var out []pipegrid.Position
	for _, p := range r.Order {
		if r.dist[r.grid.Index(p)] == m {
			out = append(out, p)
		}
	}
	return out
}

// Distances returns the sparse position → distance mapping of visited cells.
func (r *Result) Distances() map[pipegrid.Position]int {
	out := make(map[pipegrid.Position]int, len(r.Order))
	for _, p := range r.Order {
		out[p] = r.dist[r.grid.Index(p)]
	}
	return out
}

// PathTo reconstructs the BFS route from the start to dest, inclusive.
// Returns ErrNotReached if dest was not visited.
func (r *Result) PathTo(dest pipegrid.Position) ([]pipegrid.Position, error) {
	if _, ok := r.Distance(dest); !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []pipegrid.Position{}
	for at := r.grid.Index(dest); at >= 0; at = r.parent[at] {
		path = append(path, r.grid.Position(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
