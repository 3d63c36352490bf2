package board

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Split builds an unvalidated board with three islands.
//
//	..  .
//	.   .
//	  .
//
// Expected: components of sizes 3, 2 and 1.
func TestConnectedComponents_Split(t *testing.T) {
	b := newBoard([]Coord{{0, 0}, {0, 1}, {0, 4}, {1, 0}, {1, 4}, {2, 2}})

	comps := b.ConnectedComponents()
	if len(comps) != 3 {
		t.Fatalf("got %d components; want 3", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	sort.Ints(sizes)
	if want := []int{1, 2, 3}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if err := b.validate(); err == nil {
		t.Error("validate() = nil; want ErrDisconnected")
	}
}

// TestConnectedComponents_BFSOrder lists a component from its top-left cell outward.
func TestConnectedComponents_BFSOrder(t *testing.T) {
	b := newBoard([]Coord{{1, 1}, {0, 1}, {1, 0}, {1, 2}, {2, 1}})

	comps := b.ConnectedComponents()
	want := [][]Coord{{{0, 1}, {1, 1}, {1, 0}, {1, 2}, {2, 1}}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}

// TestNewBoard_Duplicates ignores a repeated coordinate.
func TestNewBoard_Duplicates(t *testing.T) {
	b := newBoard([]Coord{{0, 0}, {0, 1}, {0, 0}})
	if b.Len() != 2 {
		t.Errorf("Len = %d; want 2", b.Len())
	}
	if d := b.cells[Coord{0, 0}].Degree(); d != 1 {
		t.Errorf("Degree(0,0) = %d; want 1", d)
	}
}
