package store

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/goccy/go-json"
)

// startedAtLayout is the local wall-clock timestamp format used on disk.
// The calendar date occupies the first 10 characters and the hour
// characters 11-13, which the stats engine relies on.
const startedAtLayout = "2006-01-02T15:04:05"

// sessionJSON is the wire form of a session record. The field set is fixed;
// see the stats engine for how started_at is consumed.
type sessionJSON struct {
	Type           string  `json:"type"`
	PlannedMinutes float64 `json:"planned_minutes"`
	ActualMinutes  float64 `json:"actual_minutes"`
	Completed      bool    `json:"completed"`
	Label          string  `json:"label"`
	StartedAt      string  `json:"started_at"`
}

// SessionStore is the append-only session log, backed by sessions.json.
// Every append rewrites the full file.
type SessionStore struct {
	path string
}

// NewSessionStore creates a session store rooted at the given data directory.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, sessionsFile)}
}

// Load reads all session records in insertion order. A missing file is a
// first run and yields an empty log.
func (s *SessionStore) Load() ([]domain.SessionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session log: %w", err)
	}

	var raw []sessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing session log: %w", err)
	}

	records := make([]domain.SessionRecord, 0, len(raw))
	for i, rj := range raw {
		rec, err := rj.toRecord()
		if err != nil {
			return nil, fmt.Errorf("session log entry %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append adds one record to the end of the log and persists the full log.
func (s *SessionStore) Append(rec domain.SessionRecord) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	return s.write(append(records, rec))
}

// ReplaceAll overwrites the log with the given records.
func (s *SessionStore) ReplaceAll(records []domain.SessionRecord) error {
	return s.write(records)
}

func (s *SessionStore) write(records []domain.SessionRecord) error {
	raw := make([]sessionJSON, len(records))
	for i, rec := range records {
		raw[i] = toJSON(rec)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session log: %w", err)
	}
	if err := ensureDir(s.path); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing session log: %w", err)
	}
	return nil
}

func toJSON(rec domain.SessionRecord) sessionJSON {
	return sessionJSON{
		Type:           string(rec.Type),
		PlannedMinutes: rec.PlannedMinutes,
		ActualMinutes:  round2(rec.ActualMinutes),
		Completed:      rec.Completed,
		Label:          rec.Label,
		StartedAt:      rec.StartedAt.Format(startedAtLayout),
	}
}

func (rj sessionJSON) toRecord() (domain.SessionRecord, error) {
	typ, err := domain.ParseSessionType(rj.Type)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	// Tolerate fractional seconds written by older versions of the tool.
	ts := rj.StartedAt
	if len(ts) > len(startedAtLayout) {
		ts = ts[:len(startedAtLayout)]
	}
	startedAt, err := time.ParseInLocation(startedAtLayout, ts, time.Local)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("parsing started_at: %w", err)
	}

	return domain.SessionRecord{
		Type:           typ,
		PlannedMinutes: rj.PlannedMinutes,
		ActualMinutes:  rj.ActualMinutes,
		Completed:      rj.Completed,
		Label:          rj.Label,
		StartedAt:      startedAt,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
