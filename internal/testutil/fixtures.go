package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Record options
type RecordOption func(*domain.SessionRecord)

func WithType(t domain.SessionType) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Type = t
	}
}

func WithPlanned(minutes float64) RecordOption {
	return func(r *domain.SessionRecord) {
		r.PlannedMinutes = minutes
	}
}

func WithLabel(label string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Label = label
	}
}

func Incomplete() RecordOption {
	return func(r *domain.SessionRecord) {
		r.Completed = false
	}
}

// NewTestRecord builds a completed 25-minute focus record started at the
// given local timestamp ("2006-01-02T15:04:05"). Panics on a malformed
// timestamp since fixtures are test-author input.
func NewTestRecord(startedAt string, actualMinutes float64, opts ...RecordOption) domain.SessionRecord {
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", startedAt, time.Local)
	if err != nil {
		panic(fmt.Sprintf("bad fixture timestamp %q: %v", startedAt, err))
	}
	r := domain.SessionRecord{
		Type:           domain.SessionFocus,
		PlannedMinutes: 25,
		ActualMinutes:  actualMinutes,
		Completed:      true,
		StartedAt:      ts,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Day returns a local midnight time for a YYYY-MM-DD date string.
func Day(date string) time.Time {
	ts, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(fmt.Sprintf("bad fixture date %q: %v", date, err))
	}
	return ts
}
