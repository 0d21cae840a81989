// Package core provides the core extension for roman.
// It registers commands: version, guide, config, history, serve.
package core

import (
	"github.com/jpl-au/roman/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Standalone    = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init keeps the shared context for history and serve.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		e.newHistoryCmd(),
		e.newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the guide tool is built into the server.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// StandaloneCommands returns commands that skip the shared context: config
// loads the scope it was asked for, guide and version never read it.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "guide", "version"}
}
