package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewMendkitMCPServer creates a new MCP server with the mendkit tools and
// resources registered. The projectPath is the root directory of the
// project to scan and heal.
func NewMendkitMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"mendkit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
