// Package mcp implements the Model Context Protocol server, exposing roman
// conversions to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/jpl-au/roman/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve runs the MCP server on stdin/stdout until ctx is done or the client
// disconnects. Every extension tool is registered with extCtx bound, along
// with the guide tool and the numeral resource.
func Serve(ctx context.Context, extCtx extension.Context, tools []extension.MCPTool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx, tools)
	slog.Info("roman MCP server ready", "version", Version, "transport", "stdio",
		"tools", len(tools)+1, "engine", extCtx.Engine().String())

	err := server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server without starting a transport.
func NewServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"roman",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s)

	s.AddTool(
		mcp.NewTool("roman_guide",
			mcp.WithDescription("Get guide content for roman: numeral rules, engines, session statuses"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'numerals', 'engines') or empty for the overview")),
		),
		getGuide,
	)

	for _, t := range tools {
		s.AddTool(t.Tool, bind(extCtx, t))
	}
	return s
}

// bind adapts an extension handler to the server's handler signature.
func bind(extCtx extension.Context, t extension.MCPTool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := t.Handler(ctx, extCtx, req)
		if err != nil {
			slog.Error("tool failed", "tool", t.Tool.Name, "error", err)
		}
		return res, err
	}
}
