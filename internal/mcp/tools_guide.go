// tools_guide.go implements the MCP tool for reading the embedded guides.

package mcp

import (
	"context"

	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/guide"
	"github.com/jpl-au/roman/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles roman_guide tool calls. An unknown topic is answered
// with the list of topics rather than an error.
func getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.ArgString(req, "topic", "")

	content, err := guide.Get(topic)
	log.Event("mcp:roman_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return mcp.NewToolResultError(listErr.Error()), nil
		}
		return extension.JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}
	return mcp.NewToolResultText(content), nil
}
