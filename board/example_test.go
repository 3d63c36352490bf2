package board_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dicemap/board"
)

// ExampleParse loads a small map and lists the neighbors of its center.
func ExampleParse() {
	b, err := board.Parse(".. ..\n ...\n  .\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cells=%d height=%d width=%d\n", b.Len(), b.Height(), b.Width())

	nbrs, _ := b.Neighbors(board.Coord{Row: 1, Col: 2})
	fmt.Println(nbrs)
	// Output:
	// cells=8 height=3 width=5
	// [{1 1} {1 3} {2 2}]
}

// ExampleParse_disconnected shows the rejection of a diagonal-only join.
func ExampleParse_disconnected() {
	_, err := board.Parse("..\n.  .\n  ..\n")
	fmt.Println(errors.Is(err, board.ErrInvalidMap))
	fmt.Println(err)
	// Output:
	// true
	// board: invalid map: cells are not connected: reached 3 of 6 cells, 2 components
}
