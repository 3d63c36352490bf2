// Package decay assigns every cell near a source a label that shrinks by a
// fixed step per edge of graph distance.
package decay

import (
	"fmt"

	"github.com/katalvlaran/dicemap/board"
)

// Engine propagates labels with fixed options. It holds no per-call state and
// is safe for concurrent use; every call returns its own LabelMap.
type Engine struct {
	opts Options
}

// New builds an Engine from DefaultOptions and the given options.
// Returns ErrOptionViolation if the result fails Options.Validate.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: o}, nil
}

// Options returns the engine's configuration.
func (e *Engine) Options() Options { return e.opts }

// Propagate is a one-shot helper: New(opts...) followed by Engine.Propagate.
func Propagate(b *board.Board, source board.Coord, opts ...Option) (LabelMap, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return e.Propagate(b, source)
}

// item is a pending expansion: c was assigned label when pushed.
type item struct {
	c     board.Coord
	label int
}

// Propagate labels source with StartingValue and every cell at distance d with
// StartingValue - d*DecayStep while that value is at least MinimumValue.
//
// Cells are expanded from an explicit LIFO worklist. A neighbor is (re)labeled
// and pushed only when the candidate strictly beats its current label, so a
// cell first reached by a long path is expanded again once a shorter path
// improves it. An item whose cell was improved after it was pushed is stale
// and skipped. Labels only grow and are bounded by StartingValue, so the loop
// terminates after at most Cells × Horizon improvements.
//
// Returns ErrNilBoard or ErrSourceNotFound; the board is only read.
func (e *Engine) Propagate(b *board.Board, source board.Coord) (LabelMap, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if !b.Has(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	o := e.opts
	labels := LabelMap{}
	stack := []item{}
	assign := func(c board.Coord, v int) {
		from, ok := labels[c]
		if !ok {
			from = -1
		}
		labels[c] = v
		if o.OnRelabel != nil {
			o.OnRelabel(c, from, v)
		}
		stack = append(stack, item{c: c, label: v})
	}

	assign(source, o.StartingValue)
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// stale: a better label arrived after this push
		if labels[it.c] != it.label {
			continue
		}
		// labels stay within [MinimumValue, StartingValue], a span Validate
		// guarantees fits in an int
		if it.label-o.MinimumValue < o.DecayStep {
			continue
		}
		next := it.label - o.DecayStep

		cell, _ := b.Cell(it.c)
		for _, n := range cell.Neighbors() {
			if cur, ok := labels[n]; ok && cur >= next {
				continue
			}
			assign(n, next)
		}
	}
	return labels, nil
}
