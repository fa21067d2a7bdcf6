// File: traverse/traverse_test.go
package traverse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/traverse"
)

// rectLoop draws a rows×cols rectangular loop, framed by one ring of ground,
// with Start on its top-left corner. The loop holds 2*(rows+cols)-4 tiles.
func rectLoop(rows, cols int) []string {
	blank := strings.Repeat(".", cols+2)
	lines := []string{blank}
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		sb.WriteByte('.')
		for c := 0; c < cols; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == 0 && c == cols-1:
				sb.WriteByte('7')
			case r == rows-1 && c == 0:
				sb.WriteByte('L')
			case r == rows-1 && c == cols-1:
				sb.WriteByte('J')
			case r == 0 || r == rows-1:
				sb.WriteByte('-')
			case c == 0 || c == cols-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('.')
		lines = append(lines, sb.String())
	}
	return append(lines, blank)
}

// TraverseSuite groups traversal tests over shared fixtures.
type TraverseSuite struct {
	suite.Suite
	square *pipegrid.Grid
}

func (s *TraverseSuite) SetupTest() {
	s.square = pipegrid.MustParse(
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	)
}

// TestSquareDistances: every loop tile gets its shorter arc length.
func (s *TraverseSuite) TestSquareDistances() {
	res, err := traverse.Run(s.square, s.square.StartPosition())
	require.NoError(s.T(), err)

	want := map[pipegrid.Position]int{
		{Row: 1, Col: 1}: 0,
		{Row: 1, Col: 2}: 1, {Row: 2, Col: 1}: 1,
		{Row: 1, Col: 3}: 2, {Row: 3, Col: 1}: 2,
		{Row: 2, Col: 3}: 3, {Row: 3, Col: 2}: 3,
		{Row: 3, Col: 3}: 4,
	}
	require.Equal(s.T(), want, res.Distances())
	require.Equal(s.T(), 8, res.Visited())
	require.Equal(s.T(), 4, res.Max())
	require.Equal(s.T(), 5, res.Layers)
	require.Equal(s.T(), []pipegrid.Position{{Row: 3, Col: 3}}, res.Farthest())
	require.Equal(s.T(), s.square.StartPosition(), res.Start())

	_, ok := res.Distance(pipegrid.Position{Row: 0, Col: 0})
	require.False(s.T(), ok, "ground is never visited")
	_, ok = res.Distance(pipegrid.Position{Row: -1, Col: 0})
	require.False(s.T(), ok, "out of bounds is never visited")
}

// TestPathTo reconstructs a BFS route along the loop.
func (s *TraverseSuite) TestPathTo() {
	res, err := traverse.Run(s.square, s.square.StartPosition())
	require.NoError(s.T(), err)

	path, err := res.PathTo(pipegrid.Position{Row: 3, Col: 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []pipegrid.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
	}, path)

	_, err = res.PathTo(pipegrid.Position{Row: 2, Col: 2})
	require.ErrorIs(s.T(), err, traverse.ErrNotReached)
}

// TestSingleVisit: OnVisit fires exactly once per discovered position.
func (s *TraverseSuite) TestSingleVisit() {
	g := pipegrid.MustParse(
		"7-F7-",
		".FJ|7",
		"SJLL7",
		"|F--J",
		"LJ.LJ",
	)
	seen := map[pipegrid.Position]int{}
	res, err := traverse.Run(g, g.StartPosition(), traverse.WithOnVisit(func(p pipegrid.Position, _ int) error {
		seen[p]++
		return nil
	}))
	require.NoError(s.T(), err)
	require.Len(s.T(), seen, res.Visited())
	for p, n := range seen {
		require.Equal(s.T(), 1, n, "visits of %v", p)
	}
	require.Equal(s.T(), 16, res.Visited())
	require.Equal(s.T(), 8, res.Max())
}

// TestOnLayer reports each frontier's distance and size.
func (s *TraverseSuite) TestOnLayer() {
	var sizes []int
	_, err := traverse.Run(s.square, s.square.StartPosition(), traverse.WithOnLayer(func(dist, size int) {
		require.Equal(s.T(), len(sizes), dist)
		sizes = append(sizes, size)
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 2, 2, 2, 1}, sizes)
}

// TestMaxDepth stops discovery beyond the limit.
func (s *TraverseSuite) TestMaxDepth() {
	res, err := traverse.Run(s.square, s.square.StartPosition(), traverse.WithMaxDepth(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, res.Visited())
	require.Equal(s.T(), 2, res.Max())

	_, err = traverse.Run(s.square, s.square.StartPosition(), traverse.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, traverse.ErrOptionViolation)
}

// TestOnVisitAbort propagates hook errors.
func (s *TraverseSuite) TestOnVisitAbort() {
	stop := errors.New("stop")
	_, err := traverse.Run(s.square, s.square.StartPosition(), traverse.WithOnVisit(func(_ pipegrid.Position, d int) error {
		if d == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(s.T(), err, stop)
}

func TestTraverseSuite(t *testing.T) {
	suite.Run(t, new(TraverseSuite))
}

//----------------------------------------------------------------------------//
// Error and boundary tests
//----------------------------------------------------------------------------//

func TestRun_Errors(t *testing.T) {
	if _, err := traverse.Run(nil, pipegrid.Position{}); !errors.Is(err, traverse.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	g := pipegrid.MustParse("S7", "LJ")
	if _, err := traverse.Run(g, pipegrid.Position{Row: 2, Col: 0}); !errors.Is(err, traverse.ErrStartOutOfBounds) {
		t.Errorf("out of bounds: want ErrStartOutOfBounds, got %v", err)
	}
}

// TestRun_NoLoop covers starts with zero and one confirmed connectors.
func TestRun_NoLoop(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"Isolated", []string{"...", ".S.", "..."}},
		{"OneNeighbor", []string{".....", ".S-7.", "...|.", ".L-J."}},
		{"CornerOneNeighbor", []string{"S-7", "..|", "--J"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := pipegrid.MustParse(tc.lines...)
			if _, err := traverse.Run(g, g.StartPosition()); !errors.Is(err, traverse.ErrNoLoop) {
				t.Errorf("want ErrNoLoop, got %v", err)
			}
		})
	}
}

// TestRun_CornerStart: a start on the grid corner never steps outside.
func TestRun_CornerStart(t *testing.T) {
	g := pipegrid.MustParse(
		"S-7",
		"|.|",
		"L-J",
	)
	res, err := traverse.Run(g, g.StartPosition())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Max() != 4 || res.Visited() != 8 {
		t.Errorf("Max=%d Visited=%d; want 4, 8", res.Max(), res.Visited())
	}
}

// TestRun_LoopLength checks farthest == L/2 for rectangular loops of L tiles.
func TestRun_LoopLength(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 5}, {3, 3}, {4, 7}, {10, 10}, {3, 40}} {
		g := pipegrid.MustParse(rectLoop(dims[0], dims[1])...)
		res, err := traverse.Run(g, g.StartPosition())
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", dims, err)
		}
		l := 2*(dims[0]+dims[1]) - 4
		if res.Visited() != l {
			t.Errorf("%v: Visited = %d; want %d", dims, res.Visited(), l)
		}
		if res.Max() != l/2 {
			t.Errorf("%v: Max = %d; want %d", dims, res.Max(), l/2)
		}
	}
}
