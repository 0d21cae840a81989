// verify.go implements "roman verify".
//
// Without --table every engine runs the full check suite. With --table the
// file is compared to the encoder instead and mismatches are shown as a
// unified diff.

package tools

import (
	"errors"
	"fmt"
	"os"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/format"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/progress"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/table"
	"github.com/jpl-au/roman/internal/verify"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrVerifyFailed is returned when any check fails.
var ErrVerifyFailed = errors.New("verification failed")

var engines = []roman.Engine{roman.EngineState, roman.EnginePattern}

func (e *Extension) newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify",
		Short: "Round-trip every value and check rejection cases",
		Long: `Run the check suite through both engines: a round trip of every value
in 1-3999 through the session, numerals that must be rejected and integer
inputs that must be rejected, each with its expected exit status.

  roman verify
  roman verify --table romans.json    # compare a table file to the encoder`,
		Args: cobra.NoArgs,
		RunE: e.runVerify,
	}
	c.Flags().String(extension.FlagTable, "", "Table file to compare against the encoder")
	c.Flags().Bool(extension.FlagNoColor, false, "Disable coloured diff output")
	return c
}

func (e *Extension) runVerify(c *cobra.Command, _ []string) error {
	if path, _ := c.Flags().GetString(extension.FlagTable); path != "" {
		noColor, _ := c.Flags().GetBool(extension.FlagNoColor)
		return verifyTable(c, path, !noColor && term.IsTerminal(int(os.Stdout.Fd())))
	}

	var reports []verify.Report
	failed := false
	for _, engine := range engines {
		p := progress.New("Verifying "+engine.String(), verify.Total)
		r, err := verify.Run(c.Context(), verify.Options{Engine: engine, Step: p.Step})
		p.Done()
		log.Event("tools:verify", "verify").Engine(engine.String()).
			Output(fmt.Sprintf("%d/%d", r.Passed, r.Total)).Write(err)
		if err != nil {
			return cmd.Fail(c, err)
		}
		reports = append(reports, r)
		failed = failed || !r.OK()
		if !cmd.JSON() {
			_ = format.Verify(cmd.Out(), r)
		}
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(reports); err != nil {
			return err
		}
	}
	if failed {
		return cmd.Fail(c, ErrVerifyFailed)
	}
	return nil
}

func verifyTable(c *cobra.Command, path string, colour bool) error {
	f, err := os.Open(path)
	if err != nil {
		return cmd.Fail(c, err)
	}
	defer f.Close()

	pairs, err := table.Read(f)
	if err != nil {
		return cmd.Fail(c, fmt.Errorf("%s: %w", path, err))
	}

	r := table.Compare(pairs, path)
	var verr error
	if !r.Equal() {
		verr = ErrVerifyFailed
	}
	log.Event("tools:verify", "compare").Input(path).Detail("rows", len(pairs)).Write(verr)

	if cmd.JSON() {
		if err := cmd.PrintJSON(map[string]any{"table": path, "rows": len(pairs), "equal": r.Equal(), "removed": r.Removed, "added": r.Added, "diff": r.Diff}); err != nil {
			return err
		}
	} else if r.Equal() {
		fmt.Fprintf(cmd.Out(), "%s: %d rows match the encoder\n", path, len(pairs))
	} else {
		fmt.Fprint(cmd.Out(), r.Format(colour))
	}

	if verr != nil {
		return cmd.Fail(c, verr)
	}
	return nil
}
