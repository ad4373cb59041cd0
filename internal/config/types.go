package config

// Config is the top-level chartdoc configuration, corresponding to .chartdoc.yml.
type Config struct {
	Source    SourceConfig    `yaml:"source" koanf:"source"`
	Fetch     FetchConfig     `yaml:"fetch" koanf:"fetch"`
	Render    RenderConfig    `yaml:"render" koanf:"render"`
	Navigator NavigatorConfig `yaml:"navigator" koanf:"navigator"`
	Server    ServerConfig    `yaml:"server" koanf:"server"`
}

// SourceConfig describes where README files live.
type SourceConfig struct {
	// BaseURL is a location template; "{id}" is replaced with the document identifier.
	BaseURL   string   `yaml:"base_url" koanf:"base_url"`
	Filenames []string `yaml:"filenames" koanf:"filenames"`
}

// FetchConfig controls the HTTP client used to download README files.
type FetchConfig struct {
	UserAgent      string `yaml:"user_agent" koanf:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"` // 0 = no client timeout
}

// RenderConfig controls markdown conversion.
type RenderConfig struct {
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style"`
	AutoHeadingIDs bool   `yaml:"auto_heading_ids" koanf:"auto_heading_ids"`
	UnsafeHTML     bool   `yaml:"unsafe_html" koanf:"unsafe_html"`
}

// NavigatorConfig holds the table-of-contents and scroll-spy settings.
type NavigatorConfig struct {
	ScrollOffset      int  `yaml:"scroll_offset" koanf:"scroll_offset"`
	InitialSpyDelayMS int  `yaml:"initial_spy_delay_ms" koanf:"initial_spy_delay_ms"`
	ClickSettleMS     int  `yaml:"click_settle_ms" koanf:"click_settle_ms"`
	SpyAppliesMarker  bool `yaml:"spy_applies_marker" koanf:"spy_applies_marker"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins (dev mode)
}
