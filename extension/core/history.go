// history.go implements the "roman history" command, listing recent
// conversions from the audit log.

package core

import (
	"fmt"
	"os"
	"time"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/duration"
	"github.com/jpl-au/roman/internal/format"
	"github.com/jpl-au/roman/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		Long: `Show recent conversions from the audit log, newest first.

  roman history
  roman history --limit 5 -o json
  roman history --since 7d

The default limit is history.limit (20). --since accepts Nh, Nd, Nw or Nm.`,
		Args: cobra.NoArgs,
		RunE: e.runHistory,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 0, "Maximum entries to show")
	c.Flags().String(extension.FlagSince, "", "Only show entries newer than this (e.g. 12h, 7d)")
	return c
}

func (e *Extension) runHistory(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit <= 0 {
		limit = e.ctx.Config().HistoryLimit()
	}
	if limit > config.MaxHistoryLimit {
		limit = config.MaxHistoryLimit
	}

	var since time.Time
	if s, _ := c.Flags().GetString(extension.FlagSince); s != "" {
		t, err := duration.Since(time.Now(), s)
		if err != nil {
			return cmd.Fail(c, err)
		}
		since = t
	}

	if !e.ctx.Config().LogEnabled() {
		fmt.Fprintln(os.Stderr, "audit log disabled (log.enabled or ROMAN_NO_LOG)")
	}

	entries, err := log.RecentSince(limit, since)
	if err != nil {
		return cmd.Fail(c, fmt.Errorf("read history: %w", err))
	}
	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}
	return format.History(cmd.Out(), entries)
}
