// Package grid2d treats a rectangular block of puzzle text as a 2D grid of
// cells addressed by (column, row) points.
//
// What:
//
//   - Grid[T] stores cells in row-major order with bounds-checked access.
//   - Bearing names the four cardinal directions (North, East, South, West)
//     and converts between them and unit offsets.
//   - ParseRunes and ParseDigits build grids from line-delimited text.
//   - ShoelaceArea and BoundaryLength measure rectilinear polygons given by
//     their corner points.
//
// Why:
//
//   - Most grid puzzles need the same handful of operations: "what is at p",
//     "where do I land stepping east from p", "where are all the 'O' cells".
//   - Keeping them in one place lets each day focus on its own rules.
//
// Complexity:
//
//   - Get, At, Set, Neighbor, InBounds: O(1).
//   - FindAll, Clone, String:          O(W×H).
//   - ParseRunes, ParseDigits:         O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrMalformedInput: input text cannot be turned into a grid.
//   - ErrNonRectangular: rows have differing lengths (also ErrMalformedInput).
//   - ErrOutOfBounds: a point lies outside [0,Width)×[0,Height).
//
// Concurrency:
//
//   - A Grid is not synchronized. Concurrent readers are safe as long as no
//     goroutine calls Set; Clone before mutating a shared grid.
package grid2d
