package decay_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicemap/board"
	"github.com/katalvlaran/dicemap/decay"
)

func TestOptions_HorizonAndFallback(t *testing.T) {
	o := decay.DefaultOptions()
	assert.Equal(t, 6, o.Horizon())
	assert.Equal(t, 20, o.Fallback(nil), "nothing hovered")
	assert.Equal(t, 15, o.Fallback(decay.LabelMap{at(0, 0): 50}), "hovering elsewhere")

	o.DecayStep = 0
	assert.Equal(t, 0, o.Horizon())
}

func TestLabelMap_GetAndEntries(t *testing.T) {
	m := decay.LabelMap{at(1, 0): 45, at(0, 0): 50, at(0, 1): 45}
	assert.Equal(t, 50, m.Get(at(0, 0), 15))
	assert.Equal(t, 15, m.Get(at(9, 9), 15))

	want := []decay.Entry{
		{Coord: board.Coord{Row: 0, Col: 0}, Label: 50},
		{Coord: board.Coord{Row: 0, Col: 1}, Label: 45},
		{Coord: board.Coord{Row: 1, Col: 0}, Label: 45},
	}
	assert.Equal(t, want, m.Entries())
}

// TestOptions_Extremes rejects spans and fallbacks that overflow int and keeps
// label(source) = StartingValue for the extremes that fit.
func TestOptions_Extremes(t *testing.T) {
	rejected := []struct {
		name             string
		start, step, min int
	}{
		{"SpanFromMinInt", math.MaxInt, 1, math.MinInt + 1},
		{"FullRange", math.MaxInt, 1, math.MinInt},
		{"FallbackUnderflow", math.MinInt + 2, 5, math.MinInt},
		{"FallbackAtEdge", 0, 5, math.MinInt + 4},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decay.New(decay.WithStartingValue(tc.start), decay.WithDecayStep(tc.step), decay.WithMinimumValue(tc.min))
			assert.ErrorIs(t, err, decay.ErrOptionViolation)
			o := decay.Options{StartingValue: tc.start, DecayStep: tc.step, MinimumValue: tc.min}
			assert.Equal(t, 0, o.Horizon())
		})
	}

	b, err := board.Parse("...")
	require.NoError(t, err)
	accepted := []struct {
		name             string
		start, step, min int
		want             decay.LabelMap
	}{
		{"MaxStart", math.MaxInt, math.MaxInt, 0,
			decay.LabelMap{at(0, 0): math.MaxInt, at(0, 1): 0}},
		{"LowFloor", math.MinInt + 12, 5, math.MinInt + 5,
			decay.LabelMap{at(0, 0): math.MinInt + 12, at(0, 1): math.MinInt + 7}},
		{"WideSpan", math.MaxInt, math.MaxInt / 2, 0,
			decay.LabelMap{at(0, 0): math.MaxInt, at(0, 1): math.MaxInt - math.MaxInt/2, at(0, 2): 1}},
	}
	for _, tc := range accepted {
		t.Run(tc.name, func(t *testing.T) {
			labels, err := decay.Propagate(b, at(0, 0),
				decay.WithStartingValue(tc.start), decay.WithDecayStep(tc.step), decay.WithMinimumValue(tc.min))
			require.NoError(t, err)
			assert.Equal(t, tc.want, labels)
		})
	}

	o := decay.Options{StartingValue: math.MaxInt, DecayStep: 1, MinimumValue: 0}
	assert.Equal(t, math.MaxInt, o.Horizon())
}
