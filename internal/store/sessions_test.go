package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLoad_MissingFileIsFirstRun(t *testing.T) {
	s := NewSessionStore(t.TempDir())
	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	s := NewSessionStore(t.TempDir())

	want := []domain.SessionRecord{
		{
			Type:           domain.SessionFocus,
			PlannedMinutes: 25,
			ActualMinutes:  25.02,
			Completed:      true,
			Label:          "write report",
			StartedAt:      time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local),
		},
		{
			Type:           domain.SessionShortBreak,
			PlannedMinutes: 5,
			ActualMinutes:  5,
			Completed:      true,
			StartedAt:      time.Date(2024, 1, 2, 9, 55, 10, 0, time.Local),
		},
		{
			Type:           domain.SessionFocus,
			PlannedMinutes: 25,
			ActualMinutes:  12.5,
			Completed:      false,
			Label:          "",
			StartedAt:      time.Date(2024, 1, 2, 10, 1, 45, 0, time.Local),
		},
	}

	require.NoError(t, s.ReplaceAll(want[:2]))
	require.NoError(t, s.Append(want[2]))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionStoreAppend_RoundsActualMinutes(t *testing.T) {
	s := NewSessionStore(t.TempDir())

	require.NoError(t, s.Append(domain.SessionRecord{
		Type:           domain.SessionFocus,
		PlannedMinutes: 25,
		ActualMinutes:  24.996666,
		Completed:      true,
		StartedAt:      time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local),
	}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 25.0, got[0].ActualMinutes)
}

func TestSessionStoreLoad_ToleratesFractionalSeconds(t *testing.T) {
	dir := t.TempDir()
	payload := `[
  {
    "type": "focus",
    "planned_minutes": 25,
    "actual_minutes": 25.0,
    "completed": true,
    "label": "",
    "started_at": "2024-01-02T09:30:00.123456"
  }
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sessions.json"), []byte(payload), 0644))

	got, err := NewSessionStore(dir).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local), got[0].StartedAt)
}

func TestSessionStoreLoad_RejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"type": "nap", "planned_minutes": 5, "actual_minutes": 5, "completed": true, "label": "", "started_at": "2024-01-02T09:30:00"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sessions.json"), []byte(payload), 0644))

	_, err := NewSessionStore(dir).Load()
	assert.Error(t, err)
}

func TestSessionStoreWireFieldNames(t *testing.T) {
	dir := t.TempDir()
	s := NewSessionStore(dir)
	require.NoError(t, s.Append(domain.SessionRecord{
		Type:           domain.SessionFocus,
		PlannedMinutes: 25,
		ActualMinutes:  10,
		StartedAt:      time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local),
	}))

	data, err := os.ReadFile(filepath.Join(dir, "sessions.json"))
	require.NoError(t, err)
	for _, field := range []string{
		`"type"`, `"planned_minutes"`, `"actual_minutes"`,
		`"completed"`, `"label"`, `"started_at"`,
	} {
		assert.Contains(t, string(data), field)
	}
	assert.Contains(t, string(data), `"2024-01-02T09:30:00"`)
}
