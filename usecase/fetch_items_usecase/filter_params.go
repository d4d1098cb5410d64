package fetch_items_usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pai/domain"
	appErrors "pai/utils/errors"
)

// FilterParams is the string-typed query surface shared by the REST handlers
// and the CLI. Empty fields mean "no constraint".
type FilterParams struct {
	Kind     string
	SourceID string
	Since    string
	Query    string
	Limit    int
}

// ToListFilter validates and converts the raw parameters. Relative since
// values are anchored to now, so the same string means a different instant
// on every call.
func (p FilterParams) ToListFilter(now time.Time) (domain.ListFilter, error) {
	filter := domain.ListFilter{
		SourceID: strings.TrimSpace(p.SourceID),
		Query:    strings.TrimSpace(p.Query),
		Limit:    p.Limit,
	}

	if kind := strings.TrimSpace(p.Kind); kind != "" {
		parsed, err := domain.ParseSourceKind(kind)
		if err != nil {
			return domain.ListFilter{}, appErrors.ValidationError("invalid source kind",
				map[string]interface{}{"kind": kind})
		}
		filter.SourceKind = &parsed
	}

	if since := strings.TrimSpace(p.Since); since != "" {
		t, err := ParseSince(since, now)
		if err != nil {
			return domain.ListFilter{}, appErrors.ValidationError("invalid since value",
				map[string]interface{}{"since": since})
		}
		filter.Since = &t
	}

	return filter, nil
}

// ParseSince accepts three timestamp shapes: RFC 3339, the RFC 1123 form
// feeds use in pubDate, and a relative offset like "60m", "24h", "7d" or
// "2w" subtracted from now.
func ParseSince(value string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	if d, err := parseRelative(value); err == nil {
		return now.Add(-d).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func parseRelative(value string) (time.Duration, error) {
	if len(value) < 2 {
		return 0, fmt.Errorf("too short")
	}
	n, err := strconv.Atoi(value[:len(value)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count")
	}
	switch value[len(value)-1] {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", value[len(value)-1:])
	}
}
