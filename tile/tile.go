package tile

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned by Parse for a rune outside the tile vocabulary.
var ErrUnknownSymbol = errors.New("tile: unknown symbol")

// Tile is one grid cell variant.
type Tile uint8

const (
	// Ground has no connectors.
	Ground Tile = iota
	// Vertical connects North and South ('|').
	Vertical
	// Horizontal connects East and West ('-').
	Horizontal
	// NorthEast connects North and East ('L').
	NorthEast
	// NorthWest connects North and West ('J').
	NorthWest
	// SouthWest connects South and West ('7').
	SouthWest
	// SouthEast connects South and East ('F').
	SouthEast
	// Start is the entry tile; its true shape is unknown, so all four
	// directions are candidates.
	Start
)

// table holds symbol, name and connector mask per variant, indexed by Tile.
var table = [...]struct {
	symbol rune
	name   string
	conns  DirSet
}{
	Ground:     {'.', "Ground", 0},
	Vertical:   {'|', "Vertical", North.Set() | South.Set()},
	Horizontal: {'-', "Horizontal", East.Set() | West.Set()},
	NorthEast:  {'L', "NorthEast", North.Set() | East.Set()},
	NorthWest:  {'J', "NorthWest", North.Set() | West.Set()},
	SouthWest:  {'7', "SouthWest", South.Set() | West.Set()},
	SouthEast:  {'F', "SouthEast", South.Set() | East.Set()},
	Start:      {'S', "Start", AllDirections},
}

// Parse maps a map symbol to its Tile.
// Returns ErrUnknownSymbol (wrapped with the offending rune) otherwise.
func Parse(r rune) (Tile, error) {
	for t := range table {
		if table[t].symbol == r {
			return Tile(t), nil
		}
	}

	return Ground, fmt.Errorf("%w %q", ErrUnknownSymbol, r)
}

// Valid reports whether t is one of the declared variants.
func (t Tile) Valid() bool {
	return int(t) < len(table)
}

// Rune returns the map symbol of t, or '?' for an invalid value.
func (t Tile) Rune() rune {
	if !t.Valid() {
		return '?'
	}
	return table[t].symbol
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
	return table[t].name
}

// Connectors returns the connector directions of t.
// For Start these are candidates, not confirmed connections.
// Complexity: O(1).
func Connectors(t Tile) DirSet {
	if !t.Valid() {
		return 0
	}
	return table[t].conns
}

// FromConnectors returns the pipe variant whose connector pair equals s.
// ok is false when no fixed two-connector variant matches.
func FromConnectors(s DirSet) (t Tile, ok bool) {
	for v := Vertical; v <= SouthEast; v++ {
		if table[v].conns == s {
			return v, true
		}
	}
	return Ground, false
}
