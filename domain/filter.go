package domain

import "time"

const (
	// DefaultListLimit applies when a caller does not specify a limit.
	DefaultListLimit = 20
	// MaxListLimit bounds response sizes; larger requests are clamped.
	MaxListLimit = 100
)

// ListFilter describes one query against the item store. All predicates are
// combined with AND; a zero-value field means "no constraint on that
// dimension". Query matches case-insensitively against title or summary.
type ListFilter struct {
	SourceKind *SourceKind
	SourceID   string
	Since      *time.Time
	Query      string
	Limit      int
}

// EffectiveLimit clamps the configured limit into [1, MaxListLimit],
// substituting the default when unset. Out-of-range limits are never an
// error.
func (f ListFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		return MaxListLimit
	}
	return f.Limit
}
