package pipegrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/pipeloop/tile"
)

// Parse builds a Grid from text rows.
// Row width is measured in runes. Returns *ParseError for unknown symbols or
// ragged rows, ErrEmptyGrid for empty input, and ErrMissingStart or
// ErrMultipleStart unless exactly one 'S' is present.
// Complexity: O(W×H) time and memory.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), utf8.RuneCountInString(lines[0])
	g := &Grid{
		width:  w,
		height: h,
		tiles:  make([]tile.Tile, 0, w*h),
	}

	starts := 0
	for row, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, &ParseError{
				Line:   row,
				Column: -1,
				Err:    fmt.Errorf("%w: got %d, want %d", ErrNonRectangular, n, w),
			}
		}
		col := 0
		for _, r := range line {
			t, err := tile.Parse(r)
			if err != nil {
				return nil, &ParseError{Line: row, Column: col, Char: r, Err: ErrUnknownTile}
			}
			if t == tile.Start {
				starts++
				g.start = Position{Row: row, Col: col}
			}
			g.tiles = append(g.tiles, t)
			col++
		}
	}

	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStart, starts)
	}

	return g, nil
}

// ParseReader reads newline-separated rows from r and parses them.
// A trailing '\r' on each row is dropped and trailing blank rows are ignored.
// Rows may be of any length.
func ParseReader(r io.Reader) (*Grid, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("pipegrid: read input: %w", err)
		}
		if line != "" || err == nil {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			break
		}
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.height, g.width
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// StartPosition returns the position of the unique Start tile.
func (g *Grid) StartPosition() Position {
	return g.start
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Get returns the tile at p, or Ground when p is out of bounds.
func (g *Grid) Get(p Position) tile.Tile {
	if !g.InBounds(p) {
		return tile.Ground
	}
	return g.tiles[g.Index(p)]
}

// Index maps p to its row-major index: row*width + col.
// p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}

// String renders the grid back into its textual form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.height)
	for i, t := range g.tiles {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(t.Rune())
	}
	return sb.String()
}

// IsParseError reports whether err stems from malformed input rather than a
// missing or duplicated Start tile.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrEmptyGrid)
}
