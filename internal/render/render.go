// Package render converts README markdown to HTML and fills the content region.
package render

import (
	"bytes"
	"fmt"
	"log"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrorMessage is shown in place of the README when no candidate could be loaded.
const ErrorMessage = "Error loading README content. Neither README.md nor Readme.md could be found or loaded."

// ErrorHTML is the markup that replaces the content region on failure.
const ErrorHTML = `<p class="readme-error" style="color: #ef4444;">` + ErrorMessage + `</p>`

// Options configures the markdown converter.
type Options struct {
	HighlightStyle string // chroma style name; empty disables highlighting
	AutoHeadingIDs bool
	UnsafeHTML     bool // pass raw HTML embedded in markdown through
}

// Region is the content area of the page. Its HTML is always replaced
// wholesale, never patched.
type Region struct {
	HTML   string
	Failed bool
}

// Renderer wraps a configured goldmark instance.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GFM enabled.
func New(opts Options) *Renderer {
	exts := []goldmark.Extender{extension.GFM}
	if opts.HighlightStyle != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
		))
	}

	var parserOpts []parser.Option
	if opts.AutoHeadingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	var rendererOpts []goldmark.Option
	if opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
	}, rendererOpts...)...)

	return &Renderer{md: md}
}

// Convert turns markdown into an HTML fragment.
func (r *Renderer) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// Display replaces the region with the rendered markdown, or with the
// error message when ok is false or conversion fails.
func (r *Renderer) Display(region *Region, markdown string, ok bool) {
	if !ok {
		region.HTML, region.Failed = ErrorHTML, true
		return
	}

	out, err := r.Convert(markdown)
	if err != nil {
		log.Printf("render: %v", err)
		region.HTML, region.Failed = ErrorHTML, true
		return
	}
	region.HTML, region.Failed = out, false
}
