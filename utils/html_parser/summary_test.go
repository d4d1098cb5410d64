package html_parser

import (
	"strings"
	"testing"
)

func TestSummaryFromHTML(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"first paragraph wins",
			"<h1>Heading</h1><p>First paragraph.</p><p>Second paragraph.</p>",
			"First paragraph.",
		},
		{
			"empty paragraphs skipped",
			"<p>  </p><p>Real content.</p>",
			"Real content.",
		},
		{
			"no paragraphs falls back to document text",
			"<div>Just a div.</div>",
			"Just a div.",
		},
		{
			"nested markup flattened",
			"<p>Text with <a href=\"#\">a link</a> and <em>emphasis</em>.</p>",
			"Text with a link and emphasis.",
		},
		{
			"whitespace collapsed",
			"<p>spread\n\tacross   lines</p>",
			"spread across lines",
		},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryFromHTML(tt.html); got != tt.want {
				t.Errorf("SummaryFromHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryFromHTMLTruncates(t *testing.T) {
	long := strings.Repeat("x", 400)
	got := SummaryFromHTML("<p>" + long + "</p>")
	if len([]rune(got)) != maxSummaryRunes {
		t.Errorf("summary length: got %d runes, want %d", len([]rune(got)), maxSummaryRunes)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated summary should end with ellipsis")
	}
}
