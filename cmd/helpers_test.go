package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/zopdev/chartdoc/internal/config"
	"github.com/zopdev/chartdoc/internal/sidebar"
)

func TestNavOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Navigator.ScrollOffset = 40
	cfg.Navigator.ClickSettleMS = 500
	cfg.Navigator.SpyAppliesMarker = false

	opts := navOptionsFromConfig(cfg)
	if opts.ScrollOffset != 40 {
		t.Errorf("ScrollOffset = %v, want 40", opts.ScrollOffset)
	}
	if opts.InitialSpyDelay != 100*time.Millisecond {
		t.Errorf("InitialSpyDelay = %v, want 100ms", opts.InitialSpyDelay)
	}
	if opts.ClickSettleDelay != 500*time.Millisecond {
		t.Errorf("ClickSettleDelay = %v, want 500ms", opts.ClickSettleDelay)
	}
	if opts.SpyAppliesMarker {
		t.Error("SpyAppliesMarker should follow the config")
	}
}

func TestFetcherLocationsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source.BaseURL = "https://example.com/{id}/"

	got := newFetcherFromConfig(cfg, nil).Locations("redis")
	want := []string{"https://example.com/redis/README.md", "https://example.com/redis/Readme.md"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Locations = %v, want %v", got, want)
	}
}

func TestPrintTOC(t *testing.T) {
	entries := []sidebar.Entry{
		{Href: "#", Label: sidebar.ShowAllLabel, ShowAll: true},
		{Href: "#redis", Label: "Redis", Level: 1},
		{Href: "#installing", Label: "Installing", Level: 2},
	}

	var buf bytes.Buffer
	printTOC(&buf, entries)

	want := "Redis  #redis\n  Installing  #installing\n"
	if buf.String() != want {
		t.Errorf("printTOC =\n%q\nwant\n%q", buf.String(), want)
	}
}
