package pipegrid

import "github.com/katalvlaran/pipeloop/tile"

// NeighborPosition returns the position one step from p towards d.
// ok is false when the step would leave the grid; that is not an error,
// simply "no connection".
// Complexity: O(1).
func (g *Grid) NeighborPosition(p Position, d tile.Direction) (n Position, ok bool) {
	n = p.Step(d)
	if !g.InBounds(n) {
		return Position{}, false
	}
	return n, true
}

// Connects reports whether the tile at p and its neighbor towards d mutually
// connect: d is a connector of p's tile, the neighbor exists, and
// d.Opposite() is a connector of the neighbor's tile.
// Complexity: O(1), allocation-free.
func (g *Grid) Connects(p Position, d tile.Direction) bool {
	if !g.InBounds(p) || !tile.Connectors(g.tiles[g.Index(p)]).Has(d) {
		return false
	}
	n, ok := g.NeighborPosition(p, d)
	if !ok {
		return false
	}
	return tile.Connectors(g.tiles[g.Index(n)]).Has(d.Opposite())
}

// ConfirmedConnectors returns every direction d for which Connects(p, d) holds.
// For Start this is the shape implied by its neighbors.
func (g *Grid) ConfirmedConnectors(p Position) tile.DirSet {
	var s tile.DirSet
	for _, d := range tile.Directions {
		if g.Connects(p, d) {
			s = s.Add(d)
		}
	}
	return s
}
