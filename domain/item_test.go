package domain

import (
	"errors"
	"testing"
)

func TestParseSourceKind(t *testing.T) {
	tests := []struct {
		input   string
		want    SourceKind
		wantErr bool
	}{
		{"substack", SourceKindSubstack, false},
		{"bluesky", SourceKindBluesky, false},
		{"leaflet", SourceKindLeaflet, false},
		{"bearblog", SourceKindBearBlog, false},
		{"Substack", SourceKindSubstack, false},
		{"  BLUESKY  ", SourceKindBluesky, false},
		{"rss", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSourceKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSourceKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSourceKind) {
					t.Errorf("error should wrap ErrUnknownSourceKind, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSourceKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEffectiveLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultListLimit},
		{"negative uses default", -5, DefaultListLimit},
		{"in range passes through", 42, 42},
		{"max boundary", MaxListLimit, MaxListLimit},
		{"over max clamps", 5000, MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ListFilter{Limit: tt.limit}
			if got := f.EffectiveLimit(); got != tt.want {
				t.Errorf("EffectiveLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}
