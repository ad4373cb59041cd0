package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/zopdev/chartdoc/internal/viewer"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes chart README tools.
type Server struct {
	factory viewer.Factory
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server reading READMEs through factory.
func NewServer(factory viewer.Factory) *Server {
	s := &Server{factory: factory}

	s.mcp = server.NewMCPServer(
		"chartdoc",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getReadmeTool, s.handleGetReadme)
	s.mcp.AddTool(getReadmeTOCTool, s.handleGetReadmeTOC)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
