package bench

import (
	"context"
	"testing"
	"time"

	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	var runs []Run
	res, err := Measure(context.Background(), Options{
		Iterations: 2,
		Step:       func(r Run) { runs = append(runs, r) },
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, roman.Max, res.Numerals)
	require.Len(t, res.Runs, 4)
	assert.Equal(t, res.Runs, runs)
	assert.Equal(t, roman.EnginePattern, res.Runs[0].Engine)
	assert.Equal(t, roman.EngineState, res.Runs[1].Engine)
	assert.Equal(t, 2, res.Runs[3].Iteration)
	for _, r := range res.Runs {
		assert.Zero(t, r.Errors, "%s run %d", r.Engine, r.Iteration)
	}
	assert.Len(t, res.Averages, 2)
}

func TestMeasure_CountsErrors(t *testing.T) {
	pairs := []table.Pair{{Numeral: "IV", Value: 4}, {Numeral: "IIII", Value: 4}, {Numeral: "V", Value: 6}}
	res, err := Measure(context.Background(), Options{Iterations: 1, Pairs: pairs})
	require.NoError(t, err)
	for _, r := range res.Runs {
		assert.Equal(t, 2, r.Errors)
	}
}

func TestMeasure_Errors(t *testing.T) {
	_, err := Measure(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrNoIterations)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Measure(ctx, Options{Iterations: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Delta(t *testing.T) {
	r := Result{Averages: map[roman.Engine]time.Duration{
		roman.EnginePattern: 200 * time.Millisecond,
		roman.EngineState:   150 * time.Millisecond,
	}}
	assert.InDelta(t, 25.0, r.Delta(), 0.001)

	r.Averages[roman.EngineState] = 300 * time.Millisecond
	assert.InDelta(t, -50.0, r.Delta(), 0.001)

	assert.Zero(t, Result{}.Delta())
}
