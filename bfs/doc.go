// Package bfs runs breadth-first search over a board.Board and reports, for
// every reachable cell, its shortest edge distance from a start cell.
//
// What
//
//   - Result.Order: visit sequence (non-decreasing distance).
//   - Result.Depth: cell → distance in edges from the start.
//   - Result.Parent: cell → predecessor in the BFS tree; Result.PathTo rebuilds paths.
//   - WithMaxDepth bounds the search; WithContext makes it cancellable.
//
// Determinism
//
//	board.Board returns neighbors sorted row-major, so the visit order is reproducible.
//
// Complexity (C = cells, degree ≤ 4)
//
//   - Time:   O(C)
//   - Memory: O(C)
//
// Errors
//
//   - ErrBoardNil         if the board pointer is nil.
//   - ErrStartNotFound    if the start coordinate is not a cell.
//   - ErrOptionViolation  for a negative MaxDepth.
//   - context errors on cancellation.
package bfs
