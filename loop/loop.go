package loop

import (
	"log/slog"

	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
	"github.com/katalvlaran/pipeloop/traverse"
)

// Report summarizes the loop through the Start tile.
type Report struct {
	// Farthest is the maximum BFS distance from Start along the loop.
	Farthest int `json:"farthest" yaml:"farthest"`
	// LoopLength is the number of tiles reached from Start.
	LoopLength int `json:"loop_length" yaml:"loop_length"`
	// Start is the Start tile position.
	Start pipegrid.Position `json:"start" yaml:"start"`
	// StartShape is the pipe variant implied by Start's confirmed connectors.
	// It is empty when they do not form one of the fixed pairs.
	StartShape string `json:"start_shape,omitempty" yaml:"start_shape,omitempty"`
	// FarthestPositions lists every tile at distance Farthest.
	FarthestPositions []pipegrid.Position `json:"farthest_positions" yaml:"farthest_positions"`
}

// Option configures an analysis.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger injects a logger, passed through to the traversal.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// FarthestDistance returns the maximum distance reached from g's Start tile.
// Errors are those of traverse.Run (notably traverse.ErrNoLoop).
func FarthestDistance(g *pipegrid.Grid, opts ...Option) (int, error) {
	res, err := run(g, opts)
	if err != nil {
		return 0, err
	}
	return res.Max(), nil
}

// Analyze runs the traversal from Start and builds a Report.
func Analyze(g *pipegrid.Grid, opts ...Option) (*Report, error) {
	res, err := run(g, opts)
	if err != nil {
		return nil, err
	}
	start := g.StartPosition()
	rep := &Report{
		Farthest:          res.Max(),
		LoopLength:        res.Visited(),
		Start:             start,
		FarthestPositions: res.Farthest(),
	}
	if shape, ok := tile.FromConnectors(g.ConfirmedConnectors(start)); ok {
		rep.StartShape = string(shape.Rune())
	}
	return rep, nil
}

func run(g *pipegrid.Grid, opts []Option) (*traverse.Result, error) {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, traverse.ErrNilGrid
	}
	res, err := traverse.Run(g, g.StartPosition(), traverse.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	o.logger.Debug("loop traversed",
		slog.Int("visited", res.Visited()),
		slog.Int("layers", res.Layers))
	return res, nil
}
