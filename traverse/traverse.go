package traverse

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// walker encapsulates mutable traversal state for a single run.
type walker struct {
	grid     *pipegrid.Grid
	opts     Options
	frontier []int
	next     []int
	res      *Result
}

// Run explores g from start, one frontier per distance layer.
// Each position receives at most one distance (first discovery wins).
// Returns ErrNilGrid, ErrStartOutOfBounds, ErrOptionViolation, ErrNoLoop if
// the start tile has fewer than two confirmed connectors, or a wrapped
// OnVisit error.
// Complexity: O(W×H) time and memory.
func Run(g *pipegrid.Grid, start pipegrid.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if conns := g.ConfirmedConnectors(start); conns.Len() < 2 {
		o.Logger.Debug("start does not close a loop",
			slog.String("start", start.String()),
			slog.String("confirmed", conns.String()))
		return nil, fmt.Errorf("%w: %v confirms %s", ErrNoLoop, start, conns)
	}

	n := g.Len()
	w := &walker{
		grid: g,
		opts: o,
		res: &Result{
			grid:   g,
			start:  start,
			dist:   make([]int, n),
			parent: make([]int, n),
			Order:  make([]pipegrid.Position, 0, n),
		},
	}
	for i := range w.res.dist {
		w.res.dist[i] = -1
		w.res.parent[i] = -1
	}

	w.discover(g.Index(start), 0, -1)
	w.frontier = append(w.frontier, g.Index(start))

	return w.res, w.loop()
}

// discover records the first distance of idx and its parent.
func (w *walker) discover(idx, dist, parent int) {
	w.res.dist[idx] = dist
	w.res.parent[idx] = parent
	w.res.Order = append(w.res.Order, w.grid.Position(idx))
}

// loop expands frontiers until one adds nothing new.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		for _, idx := range w.frontier {
			if err := w.expand(idx, depth); err != nil {
				return err
			}
		}
		w.res.Layers++
		w.opts.OnLayer(depth, len(w.frontier))
		w.opts.Logger.Debug("layer expanded",
			slog.Int("depth", depth),
			slog.Int("size", len(w.frontier)),
			slog.Int("discovered", len(w.next)))

		w.frontier, w.next = w.next, w.frontier[:0]
	}
	return nil
}

// expand visits idx and queues every unvisited, mutually connected neighbor.
func (w *walker) expand(idx, depth int) error {
	p := w.grid.Position(idx)
	if err := w.opts.OnVisit(p, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", p, err)
	}
	nextDepth := depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, d := range tile.Directions {
		if !w.grid.Connects(p, d) {
			continue
		}
		// Connects guarantees the neighbor is in bounds.
		ni := w.grid.Index(p.Step(d))
		if w.res.dist[ni] >= 0 {
			continue
		}
		w.discover(ni, nextDepth, idx)
		w.next = append(w.next, ni)
	}
	return nil
}
