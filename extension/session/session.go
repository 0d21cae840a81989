// Package session provides the interactive session extension.
// Registers commands: session.
package session

import (
	"github.com/jpl-au/roman/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the session extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "session".
func (e *Extension) Name() string { return "session" }

// Init keeps the shared context for engine selection.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the session command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newSessionCmd()}
}

// MCPTools returns nil - an interactive loop has no tool equivalent.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
