/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE validates the global flags, opens the audit log
// and initialises extensions. Standalone commands (config, guide, version)
// skip extension initialisation so they work when the config file does not
// load.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roman",
	Short: "Roman numeral converter and validator",
	Long: `Convert between Roman numerals and integers (1-3999) and validate numerals
with a single-pass state machine, or the canonical pattern for comparison.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if engineName != "" {
			e, err := roman.ParseEngine(engineName)
			if err != nil {
				return err
			}
			if regex && e != roman.EnginePattern {
				return fmt.Errorf("--regex conflicts with --engine %s", e)
			}
		}

		openLog()

		if !standaloneCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "roman config validator.engine", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// openLog opens the audit log unless configuration disables it. A config
// that fails to load disables logging for the run; the command itself
// reports the error.
func openLog() {
	cfg, err := config.Load()
	if err != nil || !cfg.LogEnabled() {
		return
	}
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		return
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}
}

// exitCoder is implemented by errors that carry a process exit status.
type exitCoder interface {
	ExitCode() int
}

// interruptedStatus is the exit status after Ctrl-C, as shells report it.
const interruptedStatus = 130

// Execute runs the root command and handles process lifecycle. An
// interrupt exits 130, an error carrying an exit status exits with it and
// any other error exits 1.
func Execute() {
	registerExtensions()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	log.Close()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(interruptedStatus)
		}
		var ec exitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
