/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/session"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output     string
	engineName string
	regex      bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// EngineFlag returns the engine requested on the command line, or "" when
// neither --engine nor --regex was given. Validated in PersistentPreRunE.
func EngineFlag() roman.Engine {
	if engineName != "" {
		e, _ := roman.ParseEngine(engineName)
		return e
	}
	if regex {
		return roman.EnginePattern
	}
	return ""
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// Fail reports err and returns it wrapped with the session status for its
// category, so one-shot commands exit as the session would for the same
// input. JSON output gets {"error": ...} on stdout; otherwise the message
// goes to stderr.
func Fail(c *cobra.Command, err error) error {
	if JSON() {
		_ = PrintJSON(map[string]string{"error": err.Error()})
	} else {
		fmt.Fprintln(c.ErrOrStderr(), "Error:", err)
	}
	c.SilenceErrors = true
	c.SilenceUsage = true
	return &session.StatusError{Status: statusFor(err), Err: err}
}

// Exit returns a silent error that exits with status. For results already
// reported on stdout.
func Exit(c *cobra.Command, status session.Status) error {
	c.SilenceErrors = true
	c.SilenceUsage = true
	return &session.StatusError{Status: status, Err: fmt.Errorf("exit status %d", status)}
}

// statusFor maps err to a session status. Failures outside the conversion
// categories exit 1.
func statusFor(err error) session.Status {
	s := session.StatusOf(err)
	if s == session.StatusInvalidInput &&
		!errors.Is(err, roman.ErrMalformedInput) && !errors.Is(err, roman.ErrInputTooLong) {
		return session.StatusInputError
	}
	return s
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&engineName, "engine", "e", "", "Validator engine: state or pattern")
	rootCmd.PersistentFlags().BoolVar(&regex, "regex", false, "Validate with the pattern engine (same as --engine pattern)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("engine", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return roman.Engines(), cobra.ShellCompDirectiveNoFileComp
	})
}
