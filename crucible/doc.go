// Package crucible finds the cheapest route across a grid of per-cell costs
// for a walker that cannot keep going straight for too long.
//
// Overview:
//
//   - Search runs Dijkstra over an augmented state space: a state is a cell
//     plus the walker's recent-move History (last bearing and how many times
//     in a row it was taken). Two states with the same cell and History are
//     the same node, whatever their accumulated cost.
//   - Entering a cell costs that cell's value; the start cell is free.
//   - The walker never reverses direction. It may take the same bearing at
//     most MaxRun times in a row, and must take it at least MinRun times
//     before turning or stopping at the destination.
//
// Defaults (MaxRun=3, MinRun=1) give the "at most three in a row" crucible.
// WithMinRun(4), WithMaxRun(10) give the ultra crucible.
//
// Determinism:
//
//   - The frontier is ordered by cost, then cell (X, then Y), then History
//     (bearing, then run). Repeated searches over the same grid expand states
//     in the same order and, with WithReturnPath, return the same path.
//
// Complexity:
//
//   - States: S = W×H×4×MaxRun. Time O(S log S), Memory O(S).
//
// Errors (sentinel):
//
//   - ErrNilGrid:     grid pointer is nil.
//   - ErrOutOfBounds: start or destination outside the grid (wraps grid2d.ErrOutOfBounds).
//   - ErrBadRun:      MaxRun < 1, MinRun < 1, MinRun > MaxRun or MaxRun > 255.
//   - ErrUnreachable: frontier exhausted before the destination was finalized.
//
// Thread safety:
//
//   - Search never mutates the grid. Concurrent searches over one grid are safe
//     as long as nobody calls Grid.Set meanwhile.
package crucible
