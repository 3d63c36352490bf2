package decay_test

import (
	"fmt"

	"github.com/katalvlaran/dicemap/board"
	"github.com/katalvlaran/dicemap/decay"
)

// ExamplePropagate labels a 2×2 block from its top-left cell.
func ExamplePropagate() {
	b, _ := board.Parse("..\n..\n")
	labels, err := decay.Propagate(b, board.Coord{Row: 0, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range labels.Entries() {
		fmt.Printf("(%d,%d)=%d\n", e.Row, e.Col, e.Label)
	}
	// Output:
	// (0,0)=50
	// (0,1)=45
	// (1,0)=45
	// (1,1)=40
}
