package config

import (
	"os"
	"path/filepath"
	"testing"

	appErrors "pai/utils/errors"
)

const sourcesFixture = `
substack:
  enabled: true
  base_url: https://example.substack.com

bluesky:
  enabled: true
  handle: alice.bsky.social

leaflet:
  - enabled: true
    id: pub-a
    base_url: https://pub-a.leaflet.pub
  - enabled: false
    id: pub-b
    base_url: https://pub-b.leaflet.pub

bearblog:
  - enabled: true
    id: my-blog
    base_url: https://my-blog.bearblog.dev
`

func TestParseSources(t *testing.T) {
	cfg, err := ParseSources([]byte(sourcesFixture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Substack == nil || !cfg.Substack.Enabled || cfg.Substack.BaseURL != "https://example.substack.com" {
		t.Errorf("substack: %+v", cfg.Substack)
	}
	if cfg.Bluesky == nil || cfg.Bluesky.Handle != "alice.bsky.social" {
		t.Errorf("bluesky: %+v", cfg.Bluesky)
	}
	if len(cfg.Leaflet) != 2 {
		t.Fatalf("leaflet entries: got %d", len(cfg.Leaflet))
	}
	if cfg.Leaflet[1].Enabled {
		t.Error("second leaflet publication should be disabled")
	}
	if len(cfg.BearBlog) != 1 || cfg.BearBlog[0].ID != "my-blog" {
		t.Errorf("bearblog: %+v", cfg.BearBlog)
	}
}

func TestParseSourcesRejectsIncompleteEnabledSources(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"substack missing base_url", "substack:\n  enabled: true\n"},
		{"bluesky missing handle", "bluesky:\n  enabled: true\n"},
		{"leaflet missing id", "leaflet:\n  - enabled: true\n    base_url: https://x.leaflet.pub\n"},
		{"bearblog missing base_url", "bearblog:\n  - enabled: true\n    id: blog\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSources([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if appErrors.CodeOf(err) != appErrors.ErrCodeConfig {
				t.Errorf("error code: got %s, want %s", appErrors.CodeOf(err), appErrors.ErrCodeConfig)
			}
		})
	}
}

func TestParseSourcesDisabledSourcesNeedNoFields(t *testing.T) {
	cfg, err := ParseSources([]byte("substack:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("disabled source should not be validated: %v", err)
	}
	if cfg.Substack.Enabled {
		t.Error("substack should be disabled")
	}
}

func TestParseSourcesEmptyFile(t *testing.T) {
	cfg, err := ParseSources([]byte(""))
	if err != nil {
		t.Fatalf("empty file should parse: %v", err)
	}
	if cfg.Substack != nil || cfg.Bluesky != nil || len(cfg.Leaflet) != 0 || len(cfg.BearBlog) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(sourcesFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSources(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Substack == nil {
		t.Error("substack should be present")
	}

	if _, err := LoadSources(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should be an error")
	}
}
