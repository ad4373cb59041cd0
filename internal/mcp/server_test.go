package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/render"
	"github.com/zopdev/chartdoc/internal/viewer"
)

type stubSource map[string]string

func (s stubSource) Fetch(_ context.Context, id string) (string, bool) {
	md, ok := s[id]
	return md, ok
}

const redisReadme = "# Redis\n\n## Installing\n\n## Parameters\n\n### Common\n"

func newTestServer() *Server {
	opts := navigator.DefaultOptions()
	opts.Schedule = func(time.Duration, func()) {}
	return NewServer(viewer.Factory{
		Source:     stubSource{"redis": redisReadme},
		Renderer:   render.New(render.Options{AutoHeadingIDs: true}),
		NavOptions: opts,
	})
}

func extractText(result *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{getReadmeTool, "get_readme"},
		{getReadmeTOCTool, "get_readme_toc"},
	}
	for _, tt := range tests {
		if tt.tool.Name != tt.wantName {
			t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
		}
		if tt.tool.Description == "" {
			t.Errorf("%s: missing description", tt.wantName)
		}
	}
}

func TestHandleGetReadme(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "redis"}

		result, err := srv.handleGetReadme(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if extractText(result) != redisReadme {
			t.Errorf("text = %q", extractText(result))
		}
	})

	t.Run("missing readme", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "nginx"}

		result, err := srv.handleGetReadme(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError || extractText(result) != render.ErrorMessage {
			t.Errorf("expected error result with the error message, got %+v", result)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGetReadme(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing id")
		}
	})
}

func TestHandleGetReadmeTOC(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	t.Run("all sections", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "redis"}

		result, err := srv.handleGetReadmeTOC(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "- Redis (#redis)\n  - Installing (#installing)\n  - Parameters (#parameters)\n"
		if got := extractText(result); got != want {
			t.Errorf("toc =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "redis", "query": "INSTALL"}

		result, _ := srv.handleGetReadmeTOC(ctx, req)
		if got := extractText(result); got != "  - Installing (#installing)\n" {
			t.Errorf("toc = %q", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "redis", "query": "zzz"}

		result, _ := srv.handleGetReadmeTOC(ctx, req)
		if result.IsError || !strings.Contains(extractText(result), "No sections") {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("missing readme", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"id": "nginx"}

		result, _ := srv.handleGetReadmeTOC(ctx, req)
		if !result.IsError {
			t.Error("expected error result")
		}
	})
}
