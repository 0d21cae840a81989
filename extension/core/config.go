// config.go implements the "roman config" command for configuration management.
//
// Config follows a cascade model similar to git: local config
// (.roman/config.yaml) takes precedence over global (~/.roman/config.yaml).
// The --local flag forces the local file even if it doesn't exist yet.

package core

import (
	"fmt"
	"slices"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  roman config                         # show config
  roman config validator.engine        # show one value
  roman config validator.engine pattern

Configuration locations:
  Global: ~/.roman/config.yaml (or $ROMAN_HOME/config.yaml)
  Local:  .roman/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.roman/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.Fail(c, fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Detail("scope", scopeName).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.Fail(c, fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.Fail(c, fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.Fail(c, fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
