// table.go implements "roman table" and the roman_table MCP tool.
//
// The output is the JSON fixture other tooling consumes:
// an array of [numeral, value] string pairs.

package tools

import (
	"context"
	"fmt"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/table"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newTableCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "table",
		Short: "Print the numeral table as JSON pairs",
		Long: `Print every value in a range with its canonical numeral as
[["I","1"],["II","2"],...]. The default range is the whole of 1-3999.

  roman table > romans.json
  roman table --from 1990 --to 2000`,
		Args: cobra.NoArgs,
		RunE: e.runTable,
	}
	c.Flags().Int(extension.FlagFrom, roman.Min, "First value")
	c.Flags().Int(extension.FlagTo, roman.Max, "Last value")
	return c
}

func (e *Extension) runTable(c *cobra.Command, _ []string) error {
	from, _ := c.Flags().GetInt(extension.FlagFrom)
	to, _ := c.Flags().GetInt(extension.FlagTo)

	pairs, err := table.Build(from, to)
	log.Event("tools:table", "encode").Detail("from", from).Detail("to", to).Write(err)
	if err != nil {
		return cmd.Fail(c, err)
	}
	return table.Write(cmd.Out(), pairs)
}

func tableTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("roman_table",
			mcp.WithDescription("List values with their canonical Roman numerals as [numeral, value] pairs"),
			mcp.WithNumber("from", mcp.Description("First value (default 1)")),
			mcp.WithNumber("to", mcp.Description("Last value (default from+99, at most 3999)")),
		),
		Handler: tableHandler,
	}
}

// maxToolRows bounds a single roman_table response.
const maxToolRows = 500

func tableHandler(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from, _ := extension.ArgInt(req, "from", roman.Min)
	to, _ := extension.ArgInt(req, "to", min(from+99, roman.Max))
	if to-from+1 > maxToolRows {
		return mcp.NewToolResultError(fmt.Sprintf("at most %d rows per call", maxToolRows)), nil
	}

	pairs, err := table.Build(from, to)
	log.Event("mcp:roman_table", "encode").Detail("from", from).Detail("to", to).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(pairs)
}
