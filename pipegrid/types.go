package pipegrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/tile"
)

// Sentinel errors for grid construction.
var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("pipegrid: parse error")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrUnknownTile indicates a symbol outside the tile vocabulary.
	ErrUnknownTile = errors.New("pipegrid: unknown tile symbol")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrMissingStart indicates no Start tile was found.
	ErrMissingStart = errors.New("pipegrid: no start tile")
	// ErrMultipleStart indicates more than one Start tile was found.
	ErrMultipleStart = errors.New("pipegrid: more than one start tile")
)

// ParseError locates a malformed symbol or row. Line and Column are zero-based.
// Column is -1 for row-width errors.
type ParseError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Char)
}

// Unwrap exposes the underlying sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Position is a zero-based row/column pair.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Step returns the position one move towards d, without bounds checking.
func (p Position) Step(d tile.Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular map of tiles.
// tiles[row*width+col] holds the tile at (row, col). All fields are set once
// by Parse; Dimensions gives read access to the size.
type Grid struct {
	width, height int
	tiles         []tile.Tile
	start         Position
}
