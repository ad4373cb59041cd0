package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/zopdev/chartdoc/internal/config"
	"github.com/zopdev/chartdoc/internal/fetcher"
	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/render"
	"github.com/zopdev/chartdoc/internal/viewer"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `chartdoc init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newFetcherFromConfig creates a README fetcher. recorder may be nil.
func newFetcherFromConfig(cfg *config.Config, recorder fetcher.Recorder) *fetcher.Fetcher {
	return fetcher.New(fetcher.Options{
		BaseURL:   cfg.Source.BaseURL,
		Filenames: cfg.Source.Filenames,
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		Recorder:  recorder,
	})
}

func newRendererFromConfig(cfg *config.Config) *render.Renderer {
	return render.New(render.Options{
		HighlightStyle: cfg.Render.HighlightStyle,
		AutoHeadingIDs: cfg.Render.AutoHeadingIDs,
		UnsafeHTML:     cfg.Render.UnsafeHTML,
	})
}

func navOptionsFromConfig(cfg *config.Config) navigator.Options {
	opts := navigator.DefaultOptions()
	opts.ScrollOffset = float64(cfg.Navigator.ScrollOffset)
	opts.InitialSpyDelay = time.Duration(cfg.Navigator.InitialSpyDelayMS) * time.Millisecond
	opts.ClickSettleDelay = time.Duration(cfg.Navigator.ClickSettleMS) * time.Millisecond
	opts.SpyAppliesMarker = cfg.Navigator.SpyAppliesMarker
	return opts
}

// newFactory wires the fetcher, renderer and navigator settings together.
func newFactory(cfg *config.Config, recorder fetcher.Recorder) viewer.Factory {
	return viewer.Factory{
		Source:     newFetcherFromConfig(cfg, recorder),
		Renderer:   newRendererFromConfig(cfg),
		NavOptions: navOptionsFromConfig(cfg),
	}
}

// printLocations lists the candidate URLs for id when running verbosely.
func printLocations(cfg *config.Config, id string) {
	if !verbose {
		return
	}
	for _, u := range newFetcherFromConfig(cfg, nil).Locations(id) {
		fmt.Fprintf(os.Stderr, "  candidate: %s\n", u)
	}
}
