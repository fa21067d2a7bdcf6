// Package tile defines the closed vocabulary of pipe tiles, the four compass
// directions, and the fixed rule table mapping each tile to its connectors.
//
// What:
//
//   - Tile: Ground, Vertical '|', Horizontal '-', NorthEast 'L', NorthWest 'J',
//     SouthWest '7', SouthEast 'F' and Start 'S'.
//   - Direction: North, East, South, West; Opposite is an involution.
//   - DirSet: a 4-bit mask of directions.
//   - Connectors: two fixed directions per pipe, none for Ground, and all four
//     candidates for Start.
//
// Complexity:
//
//   - Every query is O(1) and allocation-free, except DirSet.Slice/String.
//
// Errors:
//
//   - ErrUnknownSymbol: Parse was given a rune outside the vocabulary.
package tile
