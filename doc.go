// Package pipeloop finds the closed loop of pipe tiles running through the
// Start tile of a 2D map and measures how far its farthest tile is.
//
// What
//
//   - tile/     : the fixed tile vocabulary, compass directions and 4-bit
//     direction sets; the connector rule table.
//   - pipegrid/ : parses text rows into an immutable, densely indexed Grid;
//     bounds-checked neighbor steps and the mutual Connects check.
//   - traverse/ : layered breadth-first search from a start position,
//     producing a dense distance array, parents and visit order.
//   - loop/     : runs the traversal from Start and reports the farthest
//     distance, loop length and the Start tile's implied shape.
//   - cmd/pipeloop: command line front end (text, JSON or YAML output).
//
// Quick example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// The loop holds eight tiles; the farthest, (3,3), is four steps from S.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
