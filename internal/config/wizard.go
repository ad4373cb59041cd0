package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to chartdoc! Let's configure where READMEs come from.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Source location.
	basePrompt := promptui.Prompt{
		Label:   "README location template ({id} is replaced by the chart name)",
		Default: cfg.Source.BaseURL,
		Validate: func(s string) error {
			if !strings.Contains(s, IDPlaceholder) {
				return fmt.Errorf("must contain %s", IDPlaceholder)
			}
			return nil
		},
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.Source.BaseURL = baseURL

	// 2. Candidate filenames.
	namesPrompt := promptui.Prompt{
		Label:   "README filenames, tried in order (comma-separated)",
		Default: strings.Join(cfg.Source.Filenames, ","),
	}
	namesStr, err := namesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("filenames: %w", err)
	}
	if names := splitAndTrim(namesStr); len(names) > 0 {
		cfg.Source.Filenames = names
	}

	// 3. Scroll-spy behaviour.
	spyPrompt := promptui.Select{
		Label: "Highlight the sidebar entry while scrolling?",
		Items: []string{
			"yes: scroll position moves the active marker",
			"no: only clicks move the active marker",
		},
	}
	spyIdx, _, err := spyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("scroll-spy selection: %w", err)
	}
	cfg.Navigator.SpyAppliesMarker = spyIdx == 0

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for chartdoc serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("not a valid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
