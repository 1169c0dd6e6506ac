// Package grid holds the rectangular cell/wall lattice shared by every maze
// generator, placement strategy and solver in lvmaze.
//
// What:
//
//   - Grid is a fixed width×height array of Cell states (Wall, Open, Exit).
//   - Both dimensions are odd and at least MinSize; positions with two odd
//     coordinates are lattice cells ("rooms"), the rest are wall positions.
//   - Cell-adjacent positions differ by 2 on one axis; the wall between them
//     sits at their midpoint. Wall-adjacent positions differ by 1.
//
// Why:
//
//   - Carving algorithms address rooms and walls in the same array, so a
//     maze is just a Grid whose Open cells form a spanning tree of the
//     lattice.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - Get / Set:  O(1).
//   - Components: O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height non-positive, even, or < MinSize.
//   - ErrOutOfBounds:       coordinate outside [0,W)×[0,H).
//   - ErrMalformedLayout:   Parse input is empty, ragged or has unknown runes.
package grid
