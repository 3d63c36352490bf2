// Package dicemap is the board layer of a dice-war map: it turns a sparse text
// grid into a connected graph of cells and computes the distance-decayed hover
// labels a renderer shows around the cell under the pointer.
//
// Packages:
//
//	board/    Cell, Board and the text loader with its connectivity check
//	bfs/      breadth-first distances over a Board
//	decay/    label decay engine and its YAML-configurable options
//	viewport/ pixel ↔ cell mapping and outline styles for renderers
//	cmd/      dicemap CLI: print labels or serve them over websockets
//
// Quick ASCII example, pointer on the top-left cell (defaults 50 / 5 / 20):
//
//	.. ..         50 45    25 20
//	 ...    →        40 35 30
//	  .                 30
package dicemap
