package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board loading and lookups.
var (
	// ErrInvalidMap is the root of every loader failure; no Board is returned with it.
	ErrInvalidMap = errors.New("board: invalid map")

	// ErrEmptyMap indicates the text describes zero cells.
	ErrEmptyMap = fmt.Errorf("%w: map has no cells", ErrInvalidMap)

	// ErrDisconnected indicates the cells form two or more components.
	ErrDisconnected = fmt.Errorf("%w: cells are not connected", ErrInvalidMap)

	// ErrUnknownSymbol indicates a character that is neither present nor absent.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrInvalidMap)

	// ErrLineTooLong indicates a line longer than MaxLineLength bytes.
	ErrLineTooLong = fmt.Errorf("%w: line too long", ErrInvalidMap)

	// ErrOptionViolation indicates invalid loader options.
	ErrOptionViolation = errors.New("board: invalid option supplied")

	// ErrCellNotFound indicates a coordinate that is not a cell of the board.
	ErrCellNotFound = errors.New("board: cell not found")
)
