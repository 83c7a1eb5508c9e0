// Package grid treats a rectangular 2D grid of cells as the state space of a
// search problem.
//
// What:
//
//   - Grid[T] wraps a row-major slice of cells of any type.
//   - Parse converts text lines rune by rune; New fills a blank grid.
//   - Point and Dir give coordinates, compass directions and turns.
//   - Conn4 / Conn8 select orthogonal or diagonal neighbourhoods.
//
// Why:
//
//   - Puzzle mazes and obstacle maps are grids; their cells, or cells
//     paired with a facing, are the states handed to package search.
//
// Complexity:
//
//   - Parse, New, Clone, Format: O(W×H) time and memory.
//   - InBounds, At, Set, Index, Coordinate: O(1).
//   - WithinManhattan(r): O(r²).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSize: New called with a non-positive dimension.
package grid
