package html_parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxSummaryRunes = 280

// SummaryFromHTML extracts a plain-text excerpt from an HTML body. Used when
// a feed entry carries content but no summary. Returns "" when nothing
// readable is found, which callers treat as "no summary".
func SummaryFromHTML(contentHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return ""
	}

	paragraphs := doc.Find("p").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})

	text := ""
	for _, p := range paragraphs {
		if p != "" {
			text = p
			break
		}
	}
	if text == "" {
		text = strings.TrimSpace(doc.Text())
	}

	return truncateRunes(collapseWhitespace(text), maxSummaryRunes)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
