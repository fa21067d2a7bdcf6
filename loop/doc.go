// Package loop finds the point of the Start loop farthest from the Start tile.
//
// What:
//
//   - FarthestDistance runs traverse.Run from the grid's Start position and
//     returns the largest recorded distance.
//   - Analyze builds a Report: farthest distance, loop length, the farthest
//     positions and the pipe shape implied by Start's confirmed connectors.
//
// Tiles never reached (decoration, other loops) are absent from the distance
// map and do not affect the result. For a closed loop of L tiles the farthest
// distance is L/2; no parity correction is applied.
//
// Complexity:
//
//   - FarthestDistance / Analyze: O(W×H) time and memory.
//
// Errors:
//
//   - traverse.ErrNilGrid: nil grid.
//   - traverse.ErrNoLoop:  Start has fewer than two confirmed connectors.
package loop
