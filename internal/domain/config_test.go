package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, 25.0, def.FocusMinutes)
	assert.Equal(t, 5.0, def.ShortBreakMinutes)
	assert.Equal(t, 20.0, def.LongBreakMinutes)
	assert.Equal(t, 4, def.SessionsBeforeLongBreak)
	assert.Equal(t, 8, def.DailyGoalSessions)
	assert.True(t, def.MotivationalQuotes)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "valid config unchanged",
			in:   Config{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, SessionsBeforeLongBreak: 3, DailyGoalSessions: 6},
			want: Config{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, SessionsBeforeLongBreak: 3, DailyGoalSessions: 6},
		},
		{
			name: "zero values fall back to defaults",
			in:   Config{},
			want: Config{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 20, SessionsBeforeLongBreak: 4, DailyGoalSessions: 8},
		},
		{
			name: "negative focus length falls back, rest kept",
			in:   Config{FocusMinutes: -1, ShortBreakMinutes: 7, LongBreakMinutes: 15, SessionsBeforeLongBreak: 2, DailyGoalSessions: 4},
			want: Config{FocusMinutes: 25, ShortBreakMinutes: 7, LongBreakMinutes: 15, SessionsBeforeLongBreak: 2, DailyGoalSessions: 4},
		},
		{
			name: "nan and inf fall back to defaults",
			in:   Config{FocusMinutes: math.NaN(), ShortBreakMinutes: math.Inf(1), LongBreakMinutes: math.Inf(-1), SessionsBeforeLongBreak: 2, DailyGoalSessions: 4},
			want: Config{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 20, SessionsBeforeLongBreak: 2, DailyGoalSessions: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			// MotivationalQuotes passes through untouched.
			tt.want.MotivationalQuotes = tt.in.MotivationalQuotes
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigMinutesFor(t *testing.T) {
	c := Config{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 20}
	assert.Equal(t, 25.0, c.MinutesFor(SessionFocus))
	assert.Equal(t, 5.0, c.MinutesFor(SessionShortBreak))
	assert.Equal(t, 20.0, c.MinutesFor(SessionLongBreak))
	assert.Equal(t, 25*time.Minute, c.DurationFor(SessionFocus))
	assert.Equal(t, 90*time.Second, Config{ShortBreakMinutes: 1.5}.DurationFor(SessionShortBreak))
}
