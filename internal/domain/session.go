package domain

import (
	"fmt"
	"time"
)

type SessionType string

const (
	SessionFocus      SessionType = "focus"
	SessionShortBreak SessionType = "short"
	SessionLongBreak  SessionType = "long"
)

// ParseSessionType validates a stored session type token.
func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case SessionFocus, SessionShortBreak, SessionLongBreak:
		return SessionType(s), nil
	}
	return "", fmt.Errorf("unknown session type %q", s)
}

// Title returns the display name for a session type.
func (t SessionType) Title() string {
	switch t {
	case SessionFocus:
		return "Focus"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(t)
	}
}

// SessionRecord is one terminal session outcome. Records are append-only and
// never mutated after being written to the store.
//
// ActualMinutes may marginally exceed PlannedMinutes for a resumed session:
// the final value is the sum of segment elapsed times, each measured at
// polling granularity.
type SessionRecord struct {
	Type           SessionType
	PlannedMinutes float64
	ActualMinutes  float64
	Completed      bool
	Label          string
	StartedAt      time.Time
}

// Day returns the local calendar date key (YYYY-MM-DD) of the record.
func (r SessionRecord) Day() string {
	return r.StartedAt.Format("2006-01-02")
}

// Hour returns the local hour of day (0-23) the record started in.
func (r SessionRecord) Hour() int {
	return r.StartedAt.Hour()
}
