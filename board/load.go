package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// MaxLineLength caps a single map line, in bytes, excluding the line break.
const MaxLineLength = 1 << 20

// Parse builds a Board from a text map held in memory. See Load.
func Parse(text string, opts ...LoadOption) (*Board, error) {
	return Load(strings.NewReader(text), opts...)
}

// LoadFile opens path and builds a Board from its contents. See Load.
func LoadFile(path string, opts ...LoadOption) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open map: %w", err)
	}
	defer f.Close()

	b, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Load reads a text map and returns a connected Board.
//
// Line i of the input is row i; the rune at offset j is column j. A Present
// symbol creates a cell, an Absent symbol (or the end of a short line) leaves a
// hole. A trailing '\r' is ignored. Only orthogonal neighbors are linked.
//
// Errors (all but I/O and option errors wrap ErrInvalidMap):
//
//   - ErrOptionViolation if Present == Absent or a symbol is a line break.
//   - ErrUnknownSymbol   for any other rune, with its line and column.
//   - ErrLineTooLong     if a line exceeds MaxLineLength bytes.
//   - ErrEmptyMap        if no cell is described.
//   - ErrDisconnected    if some cell cannot reach another.
//
// Complexity: O(N) in the size of the input.
func Load(r io.Reader, opts ...LoadOption) (*Board, error) {
	o := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Present == o.Absent {
		return nil, fmt.Errorf("%w: present and absent symbols are both %q", ErrOptionViolation, o.Present)
	}

	coords, err := scan(r, o)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 {
		return nil, ErrEmptyMap
	}

	b := newBoard(coords)
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// scan collects the coordinates of every Present symbol.
func scan(r io.Reader, o LoadOptions) ([]Coord, error) {
	var coords []Coord
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength+len("\r\n"))
	for row := 0; sc.Scan(); row++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(line) > MaxLineLength {
			return nil, fmt.Errorf("%w: line %d is %d bytes, limit is %d", ErrLineTooLong, row+1, len(line), MaxLineLength)
		}
		col := 0
		for _, ch := range line {
			switch ch {
			case o.Present:
				coords = append(coords, Coord{Row: row, Col: col})
			case o.Absent:
			default:
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrUnknownSymbol, ch, row+1, col+1)
			}
			col++
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, MaxLineLength)
		}
		return nil, fmt.Errorf("board: read map: %w", err)
	}
	return coords, nil
}

// validate enforces the connectivity invariant with a traversal from an
// arbitrary cell.
func (b *Board) validate() error {
	coords := b.Coords()
	reached := len(b.reach(coords[0], mapset.New[Coord]()))
	if reached == len(coords) {
		return nil
	}
	return fmt.Errorf("%w: reached %d of %d cells, %d components",
		ErrDisconnected, reached, len(coords), len(b.ConnectedComponents()))
}
