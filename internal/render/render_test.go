package render

import (
	"strings"
	"testing"
)

func defaultRenderer() *Renderer {
	return New(Options{HighlightStyle: "github", AutoHeadingIDs: true, UnsafeHTML: true})
}

func TestConvertHeadingsWithIDs(t *testing.T) {
	out, err := defaultRenderer().Convert("# Intro\n\n## Setup\n\ntext\n")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, `<h1 id="intro">Intro</h1>`) {
		t.Errorf("missing h1 with id in %q", out)
	}
	if !strings.Contains(out, `<h2 id="setup">Setup</h2>`) {
		t.Errorf("missing h2 with id in %q", out)
	}
}

func TestConvertWithoutAutoIDs(t *testing.T) {
	r := New(Options{})
	out, err := r.Convert("# Intro\n")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if strings.TrimSpace(out) != "<h1>Intro</h1>" {
		t.Errorf("Convert = %q, want plain h1", out)
	}
}

func TestConvertGFMTable(t *testing.T) {
	md := "| Key | Default |\n|-----|---------|\n| replicas | 1 |\n"
	out, err := defaultRenderer().Convert(md)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<td>replicas</td>") {
		t.Errorf("expected GFM table, got %q", out)
	}
}

func TestConvertRawHTML(t *testing.T) {
	md := "<div class=\"badge\">beta</div>\n"

	out, _ := defaultRenderer().Convert(md)
	if !strings.Contains(out, `<div class="badge">beta</div>`) {
		t.Errorf("unsafe renderer should pass raw HTML, got %q", out)
	}

	out, _ = New(Options{}).Convert(md)
	if strings.Contains(out, `<div class="badge">`) {
		t.Errorf("safe renderer should drop raw HTML, got %q", out)
	}
}

func TestConvertHighlightsCode(t *testing.T) {
	md := "```yaml\nreplicas: 1\n```\n"
	out, err := defaultRenderer().Convert(md)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out, "<pre") || !strings.Contains(out, "style=") {
		t.Errorf("expected highlighted code block, got %q", out)
	}
}

func TestDisplaySuccessReplacesRegion(t *testing.T) {
	region := &Region{HTML: "<p>Loading README...</p>", Failed: true}
	defaultRenderer().Display(region, "# Intro\n", true)

	if region.Failed {
		t.Error("region should not be marked failed")
	}
	if strings.Contains(region.HTML, "Loading") {
		t.Errorf("previous content should be replaced, got %q", region.HTML)
	}
	if !strings.Contains(region.HTML, "Intro") {
		t.Errorf("rendered content missing, got %q", region.HTML)
	}
}

func TestDisplayFailureShowsErrorMessage(t *testing.T) {
	region := &Region{HTML: "<h1>old</h1>"}
	defaultRenderer().Display(region, "", false)

	if !region.Failed {
		t.Error("region should be marked failed")
	}
	if region.HTML != ErrorHTML {
		t.Errorf("HTML = %q, want %q", region.HTML, ErrorHTML)
	}
	if !strings.Contains(region.HTML, ErrorMessage) {
		t.Error("error markup must contain the literal error message")
	}
}
