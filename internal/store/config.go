package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/goccy/go-json"
)

// Persisted config keys. Keys absent from config.json fall back to
// domain.DefaultConfig; keys the tool does not know are carried through
// Save untouched.
const (
	keyFocusMinutes            = "focus_minutes"
	keyShortBreakMinutes       = "short_break_minutes"
	keyLongBreakMinutes        = "long_break_minutes"
	keySessionsBeforeLongBreak = "sessions_before_long_break"
	keyDailyGoalSessions       = "daily_goal_sessions"
	keyMotivationalQuotes      = "motivational_quotes"
)

// ConfigStore reads and writes config.json. It remembers unknown keys seen
// by the most recent Load so they survive the next Save.
type ConfigStore struct {
	path  string
	extra map[string]json.RawMessage
}

// NewConfigStore creates a config store rooted at the given data directory.
func NewConfigStore(dir string) *ConfigStore {
	return &ConfigStore{path: filepath.Join(dir, configFile)}
}

// Load returns the effective configuration: defaults merged under any
// persisted overrides. A missing file is a first run and yields the
// defaults. Individual values that fail to decode keep their default.
func (s *ConfigStore) Load() (domain.Config, error) {
	cfg := domain.DefaultConfig()
	s.extra = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	for key, val := range raw {
		switch key {
		case keyFocusMinutes:
			decodeFloat(val, &cfg.FocusMinutes)
		case keyShortBreakMinutes:
			decodeFloat(val, &cfg.ShortBreakMinutes)
		case keyLongBreakMinutes:
			decodeFloat(val, &cfg.LongBreakMinutes)
		case keySessionsBeforeLongBreak:
			decodeInt(val, &cfg.SessionsBeforeLongBreak)
		case keyDailyGoalSessions:
			decodeInt(val, &cfg.DailyGoalSessions)
		case keyMotivationalQuotes:
			decodeBool(val, &cfg.MotivationalQuotes)
		default:
			if s.extra == nil {
				s.extra = make(map[string]json.RawMessage)
			}
			s.extra[key] = val
		}
	}

	return cfg.Normalize(), nil
}

// Save persists the configuration synchronously, keeping any unknown keys
// from the last Load.
func (s *ConfigStore) Save(cfg domain.Config) error {
	out := make(map[string]any, len(s.extra)+6)
	for key, val := range s.extra {
		out[key] = val
	}
	out[keyFocusMinutes] = cfg.FocusMinutes
	out[keyShortBreakMinutes] = cfg.ShortBreakMinutes
	out[keyLongBreakMinutes] = cfg.LongBreakMinutes
	out[keySessionsBeforeLongBreak] = cfg.SessionsBeforeLongBreak
	out[keyDailyGoalSessions] = cfg.DailyGoalSessions
	out[keyMotivationalQuotes] = cfg.MotivationalQuotes

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := ensureDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// decodeFloat overwrites dst only when val holds a usable number.
func decodeFloat(val json.RawMessage, dst *float64) {
	var f float64
	if err := json.Unmarshal(val, &f); err == nil {
		*dst = f
	}
}

func decodeInt(val json.RawMessage, dst *int) {
	var n int
	if err := json.Unmarshal(val, &n); err == nil {
		*dst = n
	}
}

func decodeBool(val json.RawMessage, dst *bool) {
	var b bool
	if err := json.Unmarshal(val, &b); err == nil {
		*dst = b
	}
}
