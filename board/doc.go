// Package board turns a sparse text grid into a connected graph of cells.
//
// What:
//
//   - Parse / Load / LoadFile read a text map: '.' marks a cell, ' ' a hole.
//   - Cells are linked to their orthogonal neighbors only (up, right, down, left).
//   - The loader rejects maps that are empty or split into several components.
//   - Board exposes the bounding box (Height, Width), cell lookup and adjacency.
//   - Cell carries gameplay display attributes (owner, mode, dice) behind a lock.
//
// Example of a valid map (8 cells, 3×5):
//
//	.. ..
//	 ...
//	  .
//
// Invalid: the lower-right pair only touches the rest diagonally.
//
//	..
//	.  .
//	  ..
//
// Complexity:
//
//   - Load:                O(N) time and memory, N = input size.
//   - ConnectedComponents: O(C) time and memory, C = number of cells.
//
// Errors:
//
//   - ErrInvalidMap:      root of every map rejection.
//   - ErrEmptyMap:        no cells.
//   - ErrDisconnected:    more than one component.
//   - ErrUnknownSymbol:   rune other than the present/absent symbols.
//   - ErrLineTooLong:     line longer than MaxLineLength bytes.
//   - ErrOptionViolation: present and absent symbols collide, or a symbol
//     is a line break or an invalid rune.
//   - ErrCellNotFound:    lookup of a coordinate outside the board.
package board
