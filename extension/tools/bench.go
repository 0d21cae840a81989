// bench.go implements "roman bench".

package tools

import (
	"fmt"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/bench"
	"github.com/jpl-au/roman/internal/format"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/progress"
	"github.com/spf13/cobra"
)

func (e *Extension) newBenchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bench",
		Short: "Compare the state machine and pattern validators",
		Long: `Decode every numeral in the table with each engine, repeatedly, and
report the average time per pass and which engine was faster.

  roman bench
  roman bench --iterations 20`,
		Args: cobra.NoArgs,
		RunE: e.runBench,
	}
	c.Flags().Int(extension.FlagIterations, bench.DefaultIterations, "Passes per engine")
	return c
}

func (e *Extension) runBench(c *cobra.Command, _ []string) error {
	n, _ := c.Flags().GetInt(extension.FlagIterations)

	p := progress.New("Benchmarking", n*2)
	res, err := bench.Measure(c.Context(), bench.Options{
		Iterations: n,
		Step:       func(bench.Run) { p.Step() },
	})
	p.Done()
	log.Event("tools:bench", "bench").Detail("iterations", n).
		Output(fmt.Sprintf("%.1f%%", res.Delta())).Write(err)
	if err != nil {
		return cmd.Fail(c, err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"iterations": res.Iterations,
			"numerals":   res.Numerals,
			"runs":       res.Runs,
			"averages":   res.Averages,
			"delta_pct":  res.Delta(),
		})
	}
	return format.Bench(cmd.Out(), res)
}
