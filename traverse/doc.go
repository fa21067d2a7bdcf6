// Package traverse runs a layered breadth-first search over a pipegrid.Grid,
// expanding only through mutually confirmed connections, and records the
// distance of every reachable tile from the start.
//
// What:
//
//   - Run explores one frontier per distance layer; a position keeps the first
//     distance it is discovered at and is never revisited.
//   - Result holds a dense distance array (-1 = unvisited), parent links and
//     discovery order, with Distance, Max, Farthest, Distances and PathTo.
//   - Options, in the functional style: WithOnVisit (an error aborts the run),
//     WithOnLayer, WithMaxDepth and WithLogger.
//
// Because every loop tile has at most two confirmed connections, the BFS
// distance of a tile equals the shorter of its two arc lengths from the start.
//
// Complexity:
//
//   - Run:    O(W×H) time, O(W×H) memory for distances, parents and order.
//   - PathTo: O(path length).
//
// Errors:
//
//   - ErrNilGrid:          nil grid.
//   - ErrStartOutOfBounds: start outside the grid.
//   - ErrNoLoop:           start has fewer than two confirmed connectors.
//   - ErrOptionViolation:  invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached:       PathTo for a position never visited.
//   - Wrapped OnVisit errors.
package traverse
