// serve.go implements the "roman serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects or the process is
// interrupted.

package core

import (
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools: roman_to_int, roman_from_int, roman_validate, roman_table, roman_guide.
Resource: roman://numerals/{number}

The engine flags set the default engine for tools that take one:
  roman serve --engine pattern`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return mcp.Serve(c.Context(), e.ctx, extension.Tools())
		},
	}
}
