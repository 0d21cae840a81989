// Package format provides output formatting utilities for CLI display.
//
// Command implementations hand their results here so that column alignment
// and report layout live in one place.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/jpl-au/roman/internal/bench"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/verify"
)

// History prints audit log entries, newest first.
func History(w io.Writer, entries []log.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	// Find max input length for alignment
	maxInput := 5 // minimum "INPUT"
	for _, e := range entries {
		if len(e.Input) > maxInput {
			maxInput = len(e.Input)
		}
	}

	fmt.Fprintf(w, "%-16s  %-8s  %-8s  %-7s  %-*s  %s\n", "TIME", "SOURCE", "ACTION", "ENGINE", maxInput, "INPUT", "RESULT")

	for _, e := range entries {
		when := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
		engine := e.Engine
		if engine == "" {
			engine = "-"
		}
		result := e.Output
		if !e.Success {
			result = "error: " + e.Error
		}
		fmt.Fprintf(w, "%-16s  %-8s  %-8s  %-7s  %-*s  %s\n", when, e.Source, e.Action, engine, maxInput, e.Input, result)
	}
	return nil
}

// Verify prints a verification report. Failures are listed before the
// summary line.
func Verify(w io.Writer, r verify.Report) error {
	for _, f := range r.Failures {
		fmt.Fprintf(w, "FAIL  %-10s  %-20q  %s\n", f.Suite, f.Input, f.Detail)
	}
	mark := "ok"
	if !r.OK() {
		mark = "FAILED"
	}
	fmt.Fprintf(w, "%s: %d/%d checks passed in %s (%s)\n", r.Engine, r.Passed, r.Total, Duration(r.Duration), mark)
	return nil
}

// Bench prints every run and the comparison of the averages.
func Bench(w io.Writer, r bench.Result) error {
	for _, run := range r.Runs {
		line := fmt.Sprintf("  run %d  %-7s  %s", run.Iteration, run.Engine, Duration(run.Duration))
		if run.Errors > 0 {
			line += fmt.Sprintf("  (%d errors)", run.Errors)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "State validator:   %s average\n", Duration(r.Averages[roman.EngineState]))
	fmt.Fprintf(w, "Pattern validator: %s average\n", Duration(r.Averages[roman.EnginePattern]))

	switch d := r.Delta(); {
	case d > 0:
		fmt.Fprintf(w, "State was %.1f%% faster than Pattern\n", d)
	case d < 0:
		fmt.Fprintf(w, "Pattern was %.1f%% faster than State\n", -d)
	default:
		fmt.Fprintln(w, "Both validators have identical performance")
	}
	fmt.Fprintf(w, "Test: Roman to Int over %d numerals, %d iterations\n", r.Numerals, r.Iterations)
	return nil
}

// Duration renders d rounded for display: microseconds below a millisecond,
// milliseconds below a second, otherwise seconds with two decimals.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
