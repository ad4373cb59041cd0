package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getReadmeTool defines the get_readme MCP tool.
var getReadmeTool = mcp.NewTool("get_readme",
	mcp.WithDescription("Get the raw markdown README of a chart. README.md is tried first, then Readme.md."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Chart identifier, e.g. redis"),
	),
)

// getReadmeTOCTool defines the get_readme_toc MCP tool.
var getReadmeTOCTool = mcp.NewTool("get_readme_toc",
	mcp.WithDescription("Get the table of contents (h1 and h2 headings) of a chart README, optionally filtered by a case-insensitive substring."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Chart identifier, e.g. redis"),
	),
	mcp.WithString("query",
		mcp.Description("Only list sections whose title contains this text"),
	),
)
