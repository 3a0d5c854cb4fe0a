package domain

import (
	"math"
	"time"
)

// Config holds the user-editable timer settings. Loaded values are merged
// over DefaultConfig; persisted keys win for the keys they set.
type Config struct {
	FocusMinutes            float64
	ShortBreakMinutes       float64
	LongBreakMinutes        float64
	SessionsBeforeLongBreak int
	DailyGoalSessions       int
	MotivationalQuotes      bool
}

// DefaultConfig returns the built-in settings used on first run and as the
// fallback for missing or invalid persisted values.
func DefaultConfig() Config {
	return Config{
		FocusMinutes:            25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        20,
		SessionsBeforeLongBreak: 4,
		DailyGoalSessions:       8,
		MotivationalQuotes:      true,
	}
}

// validMinutes reports whether v is a positive, finite minute count. NaN
// compares false against everything, so v > 0 rejects it along with -Inf;
// +Inf needs the explicit check.
func validMinutes(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Normalize replaces non-positive or non-finite numeric fields with their
// defaults. Malformed persisted values degrade to defaults rather than
// failing.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if !validMinutes(c.FocusMinutes) {
		c.FocusMinutes = def.FocusMinutes
	}
	if !validMinutes(c.ShortBreakMinutes) {
		c.ShortBreakMinutes = def.ShortBreakMinutes
	}
	if !validMinutes(c.LongBreakMinutes) {
		c.LongBreakMinutes = def.LongBreakMinutes
	}
	if c.SessionsBeforeLongBreak <= 0 {
		c.SessionsBeforeLongBreak = def.SessionsBeforeLongBreak
	}
	if c.DailyGoalSessions <= 0 {
		c.DailyGoalSessions = def.DailyGoalSessions
	}
	return c
}

// MinutesFor returns the configured length in minutes for a session type.
func (c Config) MinutesFor(t SessionType) float64 {
	switch t {
	case SessionShortBreak:
		return c.ShortBreakMinutes
	case SessionLongBreak:
		return c.LongBreakMinutes
	default:
		return c.FocusMinutes
	}
}

// DurationFor returns the configured length for a session type.
func (c Config) DurationFor(t SessionType) time.Duration {
	return time.Duration(c.MinutesFor(t) * float64(time.Minute))
}
