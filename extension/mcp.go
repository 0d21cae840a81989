// mcp.go defines types for MCP tool registration by extensions and the
// argument helpers their handlers share.
//
// Arguments are read permissively: a missing or mistyped optional argument
// yields the default instead of a tool failure.

package extension

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

func args(req mcp.CallToolRequest) map[string]any {
	m, _ := req.Params.Arguments.(map[string]any)
	return m
}

// ArgString returns a string argument or def.
func ArgString(req mcp.CallToolRequest, name, def string) string {
	if v, ok := args(req)[name].(string); ok {
		return v
	}
	return def
}

// ArgInt returns a numeric argument or def. JSON numbers arrive as float64;
// fractional values are not integers and yield def.
func ArgInt(req mcp.CallToolRequest, name string, def int) (int, bool) {
	v, ok := args(req)[name].(float64)
	if !ok || v != float64(int(v)) {
		return def, false
	}
	return int(v), true
}

// JSONResult serialises v as indented JSON in a text result.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
