package server

import (
	"github.com/katalvlaran/dicemap/board"
	"github.com/katalvlaran/dicemap/decay"
	"github.com/katalvlaran/dicemap/viewport"
)

// Client actions.
const (
	ActionHover = "hover"
	ActionClick = "click"
)

// Server message types.
const (
	TypeLabels   = "labels"
	TypeSelected = "selected"
	TypeError    = "error"
)

// ClientCommand is a pointer event in canvas pixels.
type ClientCommand struct {
	Action string `json:"action"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// ServerResponse answers one ClientCommand.
type ServerResponse struct {
	Type     string        `json:"type"`
	Source   *board.Coord  `json:"source,omitempty"`
	Fallback int           `json:"fallback"`
	Labels   []decay.Entry `json:"labels,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// CellView is the renderer's view of one cell.
type CellView struct {
	board.Coord
	Dice    int            `json:"dice"`
	Owner   string         `json:"owner,omitempty"`
	Mode    string         `json:"mode"`
	Outline viewport.Style `json:"outline"`
}

// BoardView is the payload of GET /board.
type BoardView struct {
	Height int               `json:"height"`
	Width  int               `json:"width"`
	Canvas viewport.Viewport `json:"canvas"`
	Cells  []CellView        `json:"cells"`
}
