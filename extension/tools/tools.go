// Package tools provides the tooling extension for checking the converter.
// Registers commands: table, verify, bench.
// Registers MCP tools: roman_table.
package tools

import (
	"github.com/jpl-au/roman/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the tools extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "tools".
func (e *Extension) Name() string { return "tools" }

// Init keeps the shared context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns table, verify and bench.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newTableCmd(),
		e.newVerifyCmd(),
		e.newBenchCmd(),
	}
}

// MCPTools returns the table tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{tableTool()}
}
