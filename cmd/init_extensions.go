/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the logic that loads config, resolves
// the engine and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern lets standalone commands
// run when the config file is broken. The Context is created once and
// shared across all extensions.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/roman"
)

// standaloneCommands lists commands that bypass extension initialisation.
// Built from extension-declared standalone commands.
var standaloneCommands map[string]bool

func buildStandaloneCommands() map[string]bool {
	cmds := map[string]bool{
		// cobra built-ins
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// resolveEngine applies precedence: flag, then ROMAN_ENGINE, then the
// config file, then the state machine.
func resolveEngine(cfg *config.Config) roman.Engine {
	if e := EngineFlag(); e != "" {
		return e
	}
	return cfg.Engine()
}

// initExtensions loads config and injects the shared context into
// extensions.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = fmt.Errorf("load config: %w", err)
			return
		}
		extContext = extension.NewContext(cfg, resolveEngine(cfg))

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		standaloneCommands = buildStandaloneCommands()
	})
}
