// Package extension provides the plugin architecture for roman. Extensions
// group related commands and MCP tools and register themselves at init
// time, so adding a command family never touches the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for roman extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before any of their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// must run without the shared Context, either because they repair or
// inspect configuration that may not load (config) or because they build
// their own (serve).
type Standalone interface {
	StandaloneCommands() []string
}
