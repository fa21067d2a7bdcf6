// Package pipegrid parses a map of pipe symbols into an immutable rectangular
// grid and answers connectivity questions about it.
//
// What:
//
//   - Grid stores tiles densely in row-major order: index = row*width + col.
//   - Parse / ParseReader build a Grid from text rows over the vocabulary
//     ". | - L J 7 F S" and locate the unique Start tile.
//   - NeighborPosition performs a bounds-checked single step.
//   - Connects reports whether two adjacent tiles mutually connect: the move
//     must be a connector of the source tile AND the reverse move a connector
//     of the neighbor. Start advertises all four directions, so its real shape
//     falls out of this check without any special-cased pre-pass.
//
// Complexity:
//
//   - Parse:            O(W×H) time and memory.
//   - Get / Connects:   O(1), allocation-free.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or an empty first row.
//   - ErrUnknownTile:    a symbol outside the vocabulary (wrapped in *ParseError).
//   - ErrNonRectangular: rows of differing length (wrapped in *ParseError).
//   - ErrMissingStart:   no Start tile.
//   - ErrMultipleStart:  more than one Start tile.
//
// Every *ParseError also matches ErrParse under errors.Is.
package pipegrid
