// Package convert provides the conversion extension.
// Registers commands: to-int, to-roman, validate.
// Registers MCP tools: roman_to_int, roman_from_int, roman_validate.
package convert

import (
	"github.com/jpl-au/roman/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the convert extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "convert".
func (e *Extension) Name() string { return "convert" }

// Init keeps the shared context for engine selection.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the one-shot conversion commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newToIntCmd(),
		e.newToRomanCmd(),
		e.newValidateCmd(),
	}
}

// MCPTools returns the conversion tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}
