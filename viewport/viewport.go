// Package viewport maps board coordinates to canvas pixels and back, and picks
// the outline a renderer draws around a cell.
//
// The canvas is DefaultBase pixels tall; its width keeps the board's aspect
// ratio. Cells are integer-sized, so pixels past the last full cell fall
// outside the board.
package viewport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dicemap/board"
)

// DefaultBase is the canvas height in pixels.
const DefaultBase = 300

// Sentinel errors for viewport construction.
var (
	// ErrBadDimensions indicates a non-positive board height or width, or base.
	ErrBadDimensions = errors.New("viewport: dimensions must be positive")
	// ErrCanvasTooSmall indicates a cell would be less than one pixel.
	ErrCanvasTooSmall = errors.New("viewport: canvas too small for board")
)

// Viewport is a stateless linear scaling between cells and pixels.
type Viewport struct {
	Rows, Cols   int `json:"-"`
	CanvasHeight int `json:"canvas_height"`
	CanvasWidth  int `json:"canvas_width"`
	CellHeight   int `json:"cell_height"`
	CellWidth    int `json:"cell_width"`
}

// Rect is a pixel rectangle; Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// New sizes a canvas for a rows×cols board whose height is base pixels.
func New(rows, cols, base int) (Viewport, error) {
	if rows <= 0 || cols <= 0 || base <= 0 {
		return Viewport{}, fmt.Errorf("%w: rows=%d cols=%d base=%d", ErrBadDimensions, rows, cols, base)
	}
	v := Viewport{
		Rows:         rows,
		Cols:         cols,
		CanvasHeight: base,
		CanvasWidth:  base * cols / rows,
	}
	v.CellHeight = v.CanvasHeight / rows
	v.CellWidth = v.CanvasWidth / cols
	if v.CellHeight == 0 || v.CellWidth == 0 {
		return Viewport{}, fmt.Errorf("%w: %d×%d cells on %d×%d px",
			ErrCanvasTooSmall, rows, cols, v.CanvasHeight, v.CanvasWidth)
	}
	return v, nil
}

// ForBoard sizes a canvas for b. See New.
func ForBoard(b *board.Board, base int) (Viewport, error) {
	return New(b.Height(), b.Width(), base)
}

// PixelToCoord returns the cell position under pixel (x, y); y selects the row.
// The result may lie outside the board; check with Contains or board.Has.
func (v Viewport) PixelToCoord(x, y int) board.Coord {
	return board.Coord{Row: floorDiv(y, v.CellHeight), Col: floorDiv(x, v.CellWidth)}
}

// CoordToPixel returns the top-left pixel (x, y) of cell c.
func (v Viewport) CoordToPixel(c board.Coord) (x, y int) {
	return c.Col * v.CellWidth, c.Row * v.CellHeight
}

// Bounds returns the pixel rectangle covered by c.
func (v Viewport) Bounds(c board.Coord) Rect {
	x, y := v.CoordToPixel(c)
	return Rect{Left: x, Top: y, Right: x + v.CellWidth, Bottom: y + v.CellHeight}
}

// Contains reports whether pixel (x, y) falls inside the grid's bounding box.
func (v Viewport) Contains(x, y int) bool {
	c := v.PixelToCoord(x, y)
	return x >= 0 && y >= 0 && c.Row < v.Rows && c.Col < v.Cols
}

// floorDiv rounds toward negative infinity so negative pixels map to negative cells.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Style is the outline drawn around a cell.
type Style struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

// Outline returns the outline for a cell in mode m.
func Outline(m board.Mode) Style {
	switch m {
	case board.ModeAttack:
		return Style{Color: "gray", Width: 4}
	case board.ModeDefense:
		return Style{Color: "lightgray", Width: 4}
	case board.ModeAvailable:
		return Style{Color: "black", Width: 3}
	default:
		return Style{Color: "black", Width: 1}
	}
}
