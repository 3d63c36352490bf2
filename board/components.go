package board

import (
	"github.com/zyedidia/generic/mapset"
)

// ConnectedComponents groups the cells into maximal sets joined by neighbor
// edges. Components are discovered in row-major order of their first cell and
// each component lists its cells in BFS order.
//
// A loaded Board always has exactly one component.
//
// Time:   O(N), N = number of cells (degree ≤ 4).
// Memory: O(N) for the visited set and output.
func (b *Board) ConnectedComponents() [][]Coord {
	seen := mapset.New[Coord]()
	var comps [][]Coord

	for _, start := range b.Coords() {
		if seen.Has(start) {
			continue
		}
		comps = append(comps, b.reach(start, seen))
	}
	return comps
}

// reach collects every cell reachable from start, marking them in seen.
func (b *Board) reach(start Coord, seen mapset.Set[Coord]) []Coord {
	queue := []Coord{start}
	seen.Put(start)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range b.cells[u].Neighbors() {
			if !seen.Has(v) {
				seen.Put(v)
				queue = append(queue, v)
			}
		}
	}
	return queue
}
