// Package bench times the validation engines against each other by decoding
// every numeral of a table once per iteration per engine.
package bench

import (
	"context"
	"errors"
	"time"

	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/table"
)

// DefaultIterations matches the long-standing benchmark default.
const DefaultIterations = 5

// ErrNoIterations is returned when fewer than one iteration is requested.
var ErrNoIterations = errors.New("iterations must be at least 1")

// Run is one timed pass of one engine over the table.
type Run struct {
	Iteration int           `json:"iteration"`
	Engine    roman.Engine  `json:"engine"`
	Duration  time.Duration `json:"duration_ns"`
	Errors    int           `json:"errors"`
}

// Result collects every run and the per-engine averages.
type Result struct {
	Iterations int                            `json:"iterations"`
	Numerals   int                            `json:"numerals"`
	Runs       []Run                          `json:"runs"`
	Averages   map[roman.Engine]time.Duration `json:"averages_ns"`
}

// Delta returns how much faster the state engine was than the pattern engine
// as a percentage of the pattern average. Negative means the pattern engine
// won.
func (r Result) Delta() float64 {
	p := r.Averages[roman.EnginePattern]
	if p == 0 {
		return 0
	}
	s := r.Averages[roman.EngineState]
	return float64(p-s) / float64(p) * 100
}

// Options configures a benchmark.
type Options struct {
	Iterations int
	Pairs      []table.Pair // nil means the full table
	Step       func(Run)    // called after each run
}

// Measure runs each engine over the table Iterations times. The pattern
// engine runs first in each iteration.
func Measure(ctx context.Context, opts Options) (Result, error) {
	if opts.Iterations < 1 {
		return Result{}, ErrNoIterations
	}
	pairs := opts.Pairs
	if pairs == nil {
		pairs = table.Full()
	}

	res := Result{
		Iterations: opts.Iterations,
		Numerals:   len(pairs),
		Averages:   make(map[roman.Engine]time.Duration),
	}
	order := []roman.Engine{roman.EnginePattern, roman.EngineState}
	totals := make(map[roman.Engine]time.Duration)

	for i := range opts.Iterations {
		for _, e := range order {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			run := timeEngine(e, pairs)
			run.Iteration = i + 1
			res.Runs = append(res.Runs, run)
			totals[e] += run.Duration
			if opts.Step != nil {
				opts.Step(run)
			}
		}
	}

	for e, d := range totals {
		res.Averages[e] = d / time.Duration(opts.Iterations)
	}
	return res, nil
}

// timeEngine decodes every numeral with e. A numeral that fails to decode
// or decodes to the wrong value counts as an error.
func timeEngine(e roman.Engine, pairs []table.Pair) Run {
	run := Run{Engine: e}
	start := time.Now()
	for _, p := range pairs {
		n, err := roman.ToInt(p.Numeral, e)
		if err != nil || n != p.Value {
			run.Errors++
		}
	}
	run.Duration = time.Since(start)
	return run
}
