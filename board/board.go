package board

import (
	"fmt"
	"sort"
)

// newBoard links the given coordinates into a Board. Each cell is joined to
// the orthogonally adjacent cells already present, so adjacency is symmetric
// and never dangles. Height and Width are one plus the largest row/column.
// Complexity: O(N) time and memory.
func newBoard(coords []Coord) *Board {
	b := &Board{cells: make(map[Coord]*Cell, len(coords))}
	for _, c := range coords {
		if _, dup := b.cells[c]; dup {
			continue
		}
		cell := newCell(c)
		for _, n := range c.Neighbors() {
			other, ok := b.cells[n]
			if !ok {
				continue
			}
			cell.neighbors.Put(n)
			other.neighbors.Put(c)
		}
		b.cells[c] = cell
		if c.Row+1 > b.height {
			b.height = c.Row + 1
		}
		if c.Col+1 > b.width {
			b.width = c.Col + 1
		}
	}
	return b
}

// Height returns the number of rows of the bounding box.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns of the bounding box.
func (b *Board) Width() int { return b.width }

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// InBounds reports whether c lies within the bounding box. A coordinate may be
// in bounds without being a cell.
// Complexity: O(1).
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// Has reports whether c is a cell of b.
func (b *Board) Has(c Coord) bool {
	_, ok := b.cells[c]
	return ok
}

// Cell returns the cell at c.
func (b *Board) Cell(c Coord) (*Cell, bool) {
	cell, ok := b.cells[c]
	return cell, ok
}

// Coords returns every cell coordinate sorted row-major.
// Complexity: O(N log N).
func (b *Board) Coords() []Coord {
	out := make([]Coord, 0, len(b.cells))
	for c := range b.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Neighbors returns the neighbors of c sorted row-major.
// Returns ErrCellNotFound if c is not a cell of b.
func (b *Board) Neighbors(c Coord) ([]Coord, error) {
	cell, ok := b.cells[c]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	return cell.Neighbors(), nil
}

// String renders the board shape with '.' for cells and ' ' for holes,
// trailing holes trimmed.
func (b *Board) String() string {
	buf := make([]byte, 0, b.height*(b.width+1))
	for r := 0; r < b.height; r++ {
		end := 0
		for c := 0; c < b.width; c++ {
			if b.Has(Coord{r, c}) {
				end = c + 1
			}
		}
		for c := 0; c < end; c++ {
			if b.Has(Coord{r, c}) {
				buf = append(buf, '.')
			} else {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
