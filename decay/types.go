// Package decay defines the options, result type and sentinel errors of the
// label decay engine.
package decay

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dicemap/board"
)

// Sentinel errors for label propagation.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("decay: board is nil")

	// ErrSourceNotFound is returned when the source is not a cell of the board.
	ErrSourceNotFound = fmt.Errorf("decay: source %w", board.ErrCellNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("decay: invalid option supplied")
)

// Default label parameters used by the map canvas.
const (
	DefaultStartingValue = 50
	DefaultDecayStep     = 5
	DefaultMinimumValue  = 20
)

// Options holds the label parameters. The YAML keys are the names accepted in
// configuration files.
type Options struct {
	// StartingValue is the label of the source cell.
	StartingValue int `yaml:"starting_value"`
	// DecayStep is subtracted per edge of distance; must be > 0.
	DecayStep int `yaml:"decay_step"`
	// MinimumValue is the smallest label assigned; cells below it stay unlabeled.
	MinimumValue int `yaml:"minimum_value"`

	// OnRelabel, if set, is called on every assignment; from is -1 the first time.
	OnRelabel func(c board.Coord, from, to int) `yaml:"-"`

	err error
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns 50 / 5 / 20 and no hook.
func DefaultOptions() Options {
	return Options{
		StartingValue: DefaultStartingValue,
		DecayStep:     DefaultDecayStep,
		MinimumValue:  DefaultMinimumValue,
	}
}

// WithStartingValue sets the label of the source cell.
func WithStartingValue(v int) Option {
	return func(o *Options) { o.StartingValue = v }
}

// WithDecayStep sets the per-edge decrement. Non-positive steps are rejected.
func WithDecayStep(step int) Option {
	return func(o *Options) {
		if step <= 0 {
			o.err = fmt.Errorf("%w: decay step must be positive (%d)", ErrOptionViolation, step)
			return
		}
		o.DecayStep = step
	}
}

// WithMinimumValue sets the floor below which cells stay unlabeled.
func WithMinimumValue(v int) Option {
	return func(o *Options) { o.MinimumValue = v }
}

// WithOptions replaces the three label parameters at once, e.g. with values
// read by LoadOptions. The hook is left untouched.
func WithOptions(src Options) Option {
	return func(o *Options) {
		o.StartingValue = src.StartingValue
		o.DecayStep = src.DecayStep
		o.MinimumValue = src.MinimumValue
	}
}

// WithOnRelabel registers a hook called on every label assignment.
func WithOnRelabel(fn func(c board.Coord, from, to int)) Option {
	return func(o *Options) { o.OnRelabel = fn }
}

// Validate checks DecayStep > 0 and StartingValue >= MinimumValue, and that
// the label span and the fallback (MinimumValue - DecayStep) fit in an int.
func (o Options) Validate() error {
	if o.err != nil {
		return o.err
	}
	if o.DecayStep <= 0 {
		return fmt.Errorf("%w: decay step must be positive (%d)", ErrOptionViolation, o.DecayStep)
	}
	if o.StartingValue < o.MinimumValue {
		return fmt.Errorf("%w: starting value %d below minimum value %d",
			ErrOptionViolation, o.StartingValue, o.MinimumValue)
	}
	if o.MinimumValue < 0 && o.StartingValue > math.MaxInt+o.MinimumValue {
		return fmt.Errorf("%w: span %d..%d overflows int",
			ErrOptionViolation, o.MinimumValue, o.StartingValue)
	}
	if o.MinimumValue < math.MinInt+o.DecayStep {
		return fmt.Errorf("%w: minimum value %d minus decay step %d overflows int",
			ErrOptionViolation, o.MinimumValue, o.DecayStep)
	}
	return nil
}

// Horizon returns the largest distance that still receives a label.
func (o Options) Horizon() int {
	if o.Validate() != nil {
		return 0
	}
	return (o.StartingValue - o.MinimumValue) / o.DecayStep
}

// Fallback returns the label a renderer shows for a cell absent from labels:
// MinimumValue when nothing is hovered (labels empty), one step below it otherwise.
func (o Options) Fallback(labels LabelMap) int {
	if len(labels) == 0 {
		return o.MinimumValue
	}
	return o.MinimumValue - o.DecayStep
}

// LabelMap maps cells to their label. Absence means "use the caller's default".
type LabelMap map[board.Coord]int

// Get returns the label of c, or fallback when c is unlabeled.
func (m LabelMap) Get(c board.Coord, fallback int) int {
	if v, ok := m[c]; ok {
		return v
	}
	return fallback
}

// Entry is one (cell, label) pair.
type Entry struct {
	board.Coord
	Label int `json:"label"`
}

// Entries returns the labels sorted row-major.
func (m LabelMap) Entries() []Entry {
	out := make([]Entry, 0, len(m))
	for c, v := range m {
		out = append(out, Entry{Coord: c, Label: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Coord.Less(out[j].Coord) })
	return out
}
