package cli

import (
	mcpadapter "github.com/codelens/codelens/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the CodeLens MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start CodeLens MCP server (stdio)",
		Long:  "Start the CodeLens MCP server using stdio transport. This lets coding assistants analyze and refactor source files through tool calls.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			s := mcpadapter.NewCodeLensMCPServer(projectPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
