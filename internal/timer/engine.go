// Package timer drives a single countdown session to completion or
// interruption and sequences sessions through the focus/break rotation.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Cause is the terminal cause of one countdown segment.
type Cause int

const (
	// CauseCompleted means the remaining time reached zero.
	CauseCompleted Cause = iota
	// CauseInterrupted means the stop signal arrived before the countdown
	// finished. Interruption is a first-class outcome, not an error.
	CauseInterrupted
)

// Progress is a whole-second snapshot of a running countdown.
type Progress struct {
	Elapsed   time.Duration
	Remaining time.Duration
	Fraction  float64 // 1 - remaining/planned, clamped to [0,1]
}

// Recorder receives the single terminal record of a session.
type Recorder interface {
	Append(domain.SessionRecord) error
}

// Session tracks one interval across countdown segments. Elapsed time
// accumulates over resumes; Restart discards it.
type Session struct {
	Kind      domain.SessionType
	Planned   time.Duration
	Label     string
	StartedAt time.Time

	elapsed time.Duration
}

// NewSession creates a session for one planned interval.
func NewSession(kind domain.SessionType, planned time.Duration, label string, now time.Time) (*Session, error) {
	if planned <= 0 {
		return nil, fmt.Errorf("planned duration must be positive, got %v", planned)
	}
	return &Session{Kind: kind, Planned: planned, Label: label, StartedAt: now}, nil
}

// Elapsed returns the time accumulated across all segments so far.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Remaining returns the planned time not yet elapsed, floored at zero.
func (s *Session) Remaining() time.Duration {
	r := s.Planned - s.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Restart discards all accumulated progress. No record is written for the
// discarded attempt.
func (s *Session) Restart(now time.Time) {
	s.elapsed = 0
	s.StartedAt = now
}

func (s *Session) progress() Progress {
	frac := 1 - s.Remaining().Seconds()/s.Planned.Seconds()
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return Progress{Elapsed: s.elapsed, Remaining: s.Remaining(), Fraction: frac}
}

// record materializes the terminal session record. Actual minutes are the
// accumulated elapsed time, which may slightly exceed the planned minutes
// at polling granularity.
func (s *Session) record(completed bool) domain.SessionRecord {
	label := s.Label
	if s.Kind != domain.SessionFocus {
		label = ""
	}
	return domain.SessionRecord{
		Type:           s.Kind,
		PlannedMinutes: s.Planned.Minutes(),
		ActualMinutes:  s.elapsed.Minutes(),
		Completed:      completed,
		Label:          label,
		StartedAt:      s.StartedAt,
	}
}

// Engine runs countdown segments and writes terminal outcomes through a
// Recorder. One foreground countdown runs at a time.
type Engine struct {
	rec Recorder

	// Interval is the polling granularity. Defaults to one second.
	Interval time.Duration

	// OnTick, when set, observes progress once per polling interval.
	OnTick func(Progress)
}

// NewEngine creates an engine that appends terminal records to rec.
func NewEngine(rec Recorder) *Engine {
	return &Engine{rec: rec, Interval: time.Second}
}

// Run executes one countdown segment over the session's remaining time.
// It returns CauseCompleted when the remaining time reaches zero and
// CauseInterrupted when ctx is cancelled; cancellation takes effect at the
// next polling tick at the latest. Run persists nothing: the caller decides
// the transition (resume, restart, complete, abandon).
func (e *Engine) Run(ctx context.Context, s *Session) Cause {
	interval := e.Interval
	if interval <= 0 {
		interval = time.Second
	}

	emit := func() {
		if e.OnTick != nil {
			e.OnTick(s.progress())
		}
	}

	base := s.elapsed
	segStart := time.Now()
	emit()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.elapsed = base + time.Since(segStart)
			return CauseInterrupted
		case <-ticker.C:
			s.elapsed = base + time.Since(segStart)
			emit()
			if s.Remaining() == 0 {
				return CauseCompleted
			}
		}
	}
}

// Complete records the session as completed. Called once, after the final
// segment finished naturally.
func (e *Engine) Complete(s *Session) (domain.SessionRecord, error) {
	rec := s.record(true)
	if err := e.rec.Append(rec); err != nil {
		return rec, fmt.Errorf("saving completed session: %w", err)
	}
	return rec, nil
}

// Abandon records the session as a partial. Called once, when the user stops
// an interrupted session instead of resuming or restarting it.
func (e *Engine) Abandon(s *Session) (domain.SessionRecord, error) {
	rec := s.record(false)
	if err := e.rec.Append(rec); err != nil {
		return rec, fmt.Errorf("saving partial session: %w", err)
	}
	return rec, nil
}
