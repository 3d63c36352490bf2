// Package board defines the cell, coordinate and board types, the loader
// options, and the sentinel errors of the board package.
package board

import (
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// Coord addresses a grid position: Row grows top to bottom, Col left to right.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// offsets lists the orthogonal neighbor deltas in a fixed order: up, right, down, left.
var offsets = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Neighbors returns the four orthogonally adjacent coordinates of c,
// whether or not they exist on any board.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range offsets {
		out[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}
	return out
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Mode is the display state gameplay assigns to a cell.
type Mode int

const (
	// ModeNone is the resting state.
	ModeNone Mode = iota
	// ModeAvailable marks a cell the current player may select.
	ModeAvailable
	// ModeAttack marks the attacking cell.
	ModeAttack
	// ModeDefense marks the defending cell.
	ModeDefense
)

// String returns the lower-case name of m.
func (m Mode) String() string {
	switch m {
	case ModeAvailable:
		return "available"
	case ModeAttack:
		return "attack"
	case ModeDefense:
		return "defense"
	default:
		return "none"
	}
}

// Cell is one addressable position of a Board.
//
// Adjacency is fixed when the Board is loaded and never changes. The display
// attributes (owner, mode, dice) belong to gameplay code and may be updated
// concurrently with readers; mu guards them.
type Cell struct {
	coord     Coord
	neighbors mapset.Set[Coord]

	mu    sync.RWMutex
	owner string
	mode  Mode
	dice  int
}

// newCell creates a Cell at c with an empty neighbor set.
func newCell(c Coord) *Cell {
	return &Cell{coord: c, neighbors: mapset.New[Coord]()}
}

// Coord returns the cell's coordinates.
func (c *Cell) Coord() Coord { return c.coord }

// Degree returns the number of neighbors.
func (c *Cell) Degree() int { return c.neighbors.Size() }

// IsNeighbor reports whether o is adjacent to c.
func (c *Cell) IsNeighbor(o Coord) bool { return c.neighbors.Has(o) }

// Neighbors returns the neighbor coordinates sorted row-major, so that any
// traversal built on top of it is reproducible.
func (c *Cell) Neighbors() []Coord {
	out := make([]Coord, 0, c.neighbors.Size())
	c.neighbors.Each(func(n Coord) { out = append(out, n) })
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Owner returns the owning player name, empty when unowned.
func (c *Cell) Owner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.owner
}

// SetOwner records the owning player.
func (c *Cell) SetOwner(owner string) {
	c.mu.Lock()
	c.owner = owner
	c.mu.Unlock()
}

// Mode returns the current display mode.
func (c *Cell) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SetMode sets the display mode.
func (c *Cell) SetMode(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
}

// Dice returns the number of dice the cell holds.
func (c *Cell) Dice() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dice
}

// SetDice sets the number of dice; negative values are clamped to zero.
func (c *Cell) SetDice(n int) {
	if n < 0 {
		n = 0
	}
	c.mu.Lock()
	c.dice = n
	c.mu.Unlock()
}

// Board is the connected map graph: every cell plus the bounding box of the grid.
// The shape of a Board is immutable once built, so it can be read from many
// goroutines without locking.
type Board struct {
	height, width int
	cells         map[Coord]*Cell
}

// LoadOption configures the text loader.
// An invalid option is recorded and surfaced as ErrOptionViolation by Load.
type LoadOption func(*LoadOptions)

// LoadOptions holds the symbols the loader recognises.
type LoadOptions struct {
	// Present marks "a cell exists here".
	Present rune
	// Absent marks "no cell here". Short lines are padded with it.
	Absent rune

	err error
}

// DefaultLoadOptions returns Present='.' and Absent=' '.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Present: '.', Absent: ' '}
}

// WithPresent sets the "cell exists" symbol.
// Line breaks and invalid runes are recorded as ErrOptionViolation.
func WithPresent(r rune) LoadOption {
	return func(o *LoadOptions) {
		if err := checkSymbol("present", r); err != nil {
			o.err = err
			return
		}
		o.Present = r
	}
}

// WithAbsent sets the "no cell" symbol.
// Line breaks and invalid runes are recorded as ErrOptionViolation.
func WithAbsent(r rune) LoadOption {
	return func(o *LoadOptions) {
		if err := checkSymbol("absent", r); err != nil {
			o.err = err
			return
		}
		o.Absent = r
	}
}

// checkSymbol rejects runes a line of the map can never contain.
func checkSymbol(name string, r rune) error {
	if r == '\n' || r == '\r' || r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %s symbol %q cannot appear in a map line", ErrOptionViolation, name, r)
	}
	return nil
}
