package domain

import "time"

// SourceRef identifies one configured source instance within a sync pass.
type SourceRef struct {
	Kind     SourceKind
	SourceID string
}

// SourceOutcome records what happened to a single source during a sync pass:
// either the number of items written, or the error that stopped it.
type SourceOutcome struct {
	ItemCount int
	Err       error
}

// SyncReport aggregates per-source outcomes for one orchestrated pass.
// A failure in one source never removes the outcomes of the others.
type SyncReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   map[SourceRef]SourceOutcome
}

func NewSyncReport(runID string, startedAt time.Time) *SyncReport {
	return &SyncReport{
		RunID:     runID,
		StartedAt: startedAt,
		Outcomes:  make(map[SourceRef]SourceOutcome),
	}
}

// Failed returns the refs of every source whose fetch or write failed.
func (r *SyncReport) Failed() []SourceRef {
	var refs []SourceRef
	for ref, outcome := range r.Outcomes {
		if outcome.Err != nil {
			refs = append(refs, ref)
		}
	}
	return refs
}

// TotalItems sums the items written across all successful sources.
func (r *SyncReport) TotalItems() int {
	total := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err == nil {
			total += outcome.ItemCount
		}
	}
	return total
}

// SourceCount reports how many sources took part in the pass.
func (r *SyncReport) SourceCount() int {
	return len(r.Outcomes)
}
