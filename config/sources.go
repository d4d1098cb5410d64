package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	appErrors "pai/utils/errors"
)

// SourcesConfig describes every upstream publication the sync pass may poll.
// Substack and Bluesky are single-instance; Leaflet and BearBlog accept any
// number of configured publications, each fetched independently.
type SourcesConfig struct {
	Substack *SubstackSource     `yaml:"substack"`
	Bluesky  *BlueskySource      `yaml:"bluesky"`
	Leaflet  []PublicationSource `yaml:"leaflet"`
	BearBlog []PublicationSource `yaml:"bearblog"`
}

type SubstackSource struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
}

type BlueskySource struct {
	Enabled bool   `yaml:"enabled"`
	Handle  string `yaml:"handle"`
}

// PublicationSource configures one Leaflet or BearBlog publication. ID is a
// logical name chosen by the operator, not derived from the URL.
type PublicationSource struct {
	Enabled bool   `yaml:"enabled"`
	ID      string `yaml:"id"`
	BaseURL string `yaml:"base_url"`
}

// LoadSources reads and validates the sources file. A missing file is an
// error; an empty file yields a configuration with no sources, which is
// legal (sync passes simply do nothing).
func LoadSources(path string) (*SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	return ParseSources(data)
}

// ParseSources parses YAML source definitions and rejects enabled sources
// with missing required fields before any network activity happens.
func ParseSources(data []byte) (*SourcesConfig, error) {
	var cfg SourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, appErrors.ConfigError("failed to parse sources file", err, nil)
	}

	if s := cfg.Substack; s != nil && s.Enabled && s.BaseURL == "" {
		return nil, appErrors.ConfigError("substack source enabled but base_url is empty", nil,
			map[string]interface{}{"source_kind": "substack"})
	}
	if b := cfg.Bluesky; b != nil && b.Enabled && b.Handle == "" {
		return nil, appErrors.ConfigError("bluesky source enabled but handle is empty", nil,
			map[string]interface{}{"source_kind": "bluesky"})
	}
	for i, l := range cfg.Leaflet {
		if l.Enabled && (l.ID == "" || l.BaseURL == "") {
			return nil, appErrors.ConfigError(fmt.Sprintf("leaflet source %d enabled but id or base_url is empty", i), nil,
				map[string]interface{}{"source_kind": "leaflet"})
		}
	}
	for i, b := range cfg.BearBlog {
		if b.Enabled && (b.ID == "" || b.BaseURL == "") {
			return nil, appErrors.ConfigError(fmt.Sprintf("bearblog source %d enabled but id or base_url is empty", i), nil,
				map[string]interface{}{"source_kind": "bearblog"})
		}
	}

	return &cfg, nil
}
