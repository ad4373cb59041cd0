package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "CHARTDOC_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CHARTDOC_*). A double underscore
// separates nested keys: CHARTDOC_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Slices are decoded element-wise onto existing values, so clear the
	// default candidates before unmarshalling and restore them if unset.
	cfg.Source.Filenames = nil
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if len(cfg.Source.Filenames) == 0 {
		cfg.Source.Filenames = append([]string(nil), DefaultFilenames...)
	}

	return cfg, nil
}

// envKey maps CHARTDOC_SOURCE__BASE_URL to source.base_url.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}
	if !strings.Contains(c.Source.BaseURL, IDPlaceholder) {
		return fmt.Errorf("source.base_url %q must contain the %s placeholder", c.Source.BaseURL, IDPlaceholder)
	}
	if len(c.Source.Filenames) == 0 {
		return fmt.Errorf("source.filenames must list at least one candidate")
	}
	for i, name := range c.Source.Filenames {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("source.filenames[%d] is empty", i)
		}
	}

	if c.Fetch.TimeoutSeconds < 0 {
		return fmt.Errorf("fetch.timeout_seconds must be non-negative")
	}

	if c.Navigator.ScrollOffset < 0 {
		return fmt.Errorf("navigator.scroll_offset must be non-negative")
	}
	if c.Navigator.InitialSpyDelayMS < 0 || c.Navigator.ClickSettleMS < 0 {
		return fmt.Errorf("navigator delays must be non-negative")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	return nil
}
