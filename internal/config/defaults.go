package config

const (
	// DefaultBaseURL points at the chart directory of the zopdev helm-charts repository.
	DefaultBaseURL = "https://raw.githubusercontent.com/zopdev/helm-charts/main/charts/{id}/"

	// DefaultConfigFile is the config path used when --config is not given.
	DefaultConfigFile = ".chartdoc.yml"

	// IDPlaceholder is substituted with the document identifier in Source.BaseURL.
	IDPlaceholder = "{id}"
)

// DefaultFilenames are the README candidates tried in order.
var DefaultFilenames = []string{"README.md", "Readme.md"}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:   DefaultBaseURL,
			Filenames: append([]string(nil), DefaultFilenames...),
		},
		Fetch: FetchConfig{
			UserAgent:      "chartdoc",
			TimeoutSeconds: 0,
		},
		Render: RenderConfig{
			HighlightStyle: "github",
			AutoHeadingIDs: true,
			UnsafeHTML:     true,
		},
		Navigator: NavigatorConfig{
			ScrollOffset:      80,
			InitialSpyDelayMS: 100,
			ClickSettleMS:     300,
			SpyAppliesMarker:  true,
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
