package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCodeLensMCPServer creates a new MCP server with all CodeLens tools
// registered. The projectPath is the root directory used for
// path-relative tool calls.
func NewCodeLensMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"codelens",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
