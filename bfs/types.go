// Package bfs provides tunable options and error definitions
// for breadth-first search over a board.Board.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dicemap/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start coordinate is not a cell.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("bfs: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells in visit sequence.
//   - Depth: shortest edge distance from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Start  board.Coord
	Order  []board.Coord
	Depth  map[board.Coord]int
	Parent map[board.Coord]board.Coord
}

// Reached reports whether c was visited.
func (r *Result) Reached(c board.Coord) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the path from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest board.Coord) ([]board.Coord, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []board.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
