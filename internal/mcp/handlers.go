package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/render"
	"github.com/zopdev/chartdoc/internal/sidebar"
)

// handleGetReadme returns the markdown of a chart README.
func (s *Server) handleGetReadme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	markdown, ok := s.factory.Source.Fetch(ctx, id)
	if !ok {
		return mcp.NewToolResultError(render.ErrorMessage), nil
	}
	return mcp.NewToolResultText(markdown), nil
}

// handleGetReadmeTOC renders a chart README and lists its visible sections.
func (s *Server) handleGetReadmeTOC(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	f := s.factory
	f.NavOptions.Schedule = func(time.Duration, func()) {}
	page := f.NewPage(navigator.NewStaticViewport(0, nil), nil)

	res := page.Load(ctx, id)
	if !res.Found {
		return mcp.NewToolResultError(render.ErrorMessage), nil
	}

	nav := page.Navigator()
	query := request.GetString("query", "")
	nav.Filter(query)

	entries := nav.Visible()
	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sections of %q match %q.", id, query)), nil
	}
	return mcp.NewToolResultText(formatTOC(entries)), nil
}

// formatTOC lists entries one per line, level-2 sections indented.
func formatTOC(entries []sidebar.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		if e.ShowAll {
			continue
		}
		if e.Level == 2 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "- %s (%s)\n", e.Label, e.Href)
	}
	return sb.String()
}
