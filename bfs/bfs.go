// Package bfs provides breadth-first search over a board.Board,
// returning shortest edge distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dicemap/board"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     board.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	board   *board.Board
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited mapset.Set[board.Coord]
	res     *Result
}

// BFS runs breadth-first search on b starting from start.
// Returns ErrBoardNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
// On cancellation the partial Result is returned alongside the error.
func BFS(b *board.Board, start board.Coord, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !b.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := b.Len()
	w := &walker{
		board:   b,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: mapset.New[board.Coord](),
		res: &Result{
			Start:  start,
			Order:  make([]board.Coord, 0, n),
			Depth:  make(map[board.Coord]int, n),
			Parent: make(map[board.Coord]board.Coord, n),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// Distances is a convenience wrapper returning only the depth map.
func Distances(b *board.Board, start board.Coord) (map[board.Coord]int, error) {
	res, err := BFS(b, start)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}

// enqueue marks c visited at depth d and records its parent.
func (w *walker) enqueue(c board.Coord, d int, parent *board.Coord) {
	w.visited.Put(c)
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.queue = append(w.queue, queueItem{c: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.c)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.board.Neighbors(item.c)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.c, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.visited.Has(nbr) {
			parent := item.c
			w.enqueue(nbr, next, &parent)
		}
	}
	return nil
}
