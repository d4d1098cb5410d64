package config

import "testing"

func TestIsOriginAllowed(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"https://example.dev", "http://localhost:3000"}}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact match", "https://example.dev", true},
		{"subdomain shares root", "https://pai.example.dev", true},
		{"deep subdomain shares root", "https://a.b.example.dev", true},
		{"different root blocked", "https://example.com", false},
		{"suffix trick blocked", "https://notexample.dev", false},
		{"localhost exact", "http://localhost:3000", true},
		{"localhost other port blocked", "http://localhost:8080", false},
		{"empty origin blocked", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsOriginAllowed(tt.origin); got != tt.want {
				t.Errorf("IsOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestIsOriginAllowedNoConfig(t *testing.T) {
	if (CORSConfig{}).IsOriginAllowed("https://example.dev") {
		t.Error("no configured origins should block everything")
	}
}

func TestIsDevKeyValid(t *testing.T) {
	cfg := CORSConfig{DevKey: "sekrit"}
	if !cfg.IsDevKeyValid("sekrit") {
		t.Error("matching key should validate")
	}
	if cfg.IsDevKeyValid("wrong") {
		t.Error("wrong key should not validate")
	}
	if (CORSConfig{}).IsDevKeyValid("") {
		t.Error("unset key should never validate, even against empty input")
	}
}
