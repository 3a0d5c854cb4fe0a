package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/stats"
	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRenderKPIs(t *testing.T) {
	records := []domain.SessionRecord{
		testutil.NewTestRecord("2024-01-09T09:00:00", 60),
		testutil.NewTestRecord("2024-01-10T09:00:00", 30),
		testutil.NewTestRecord("2024-01-10T10:00:00", 10, testutil.Incomplete()),
	}
	report := stats.Compute(records, testutil.Day("2024-01-10"))

	out := renderKPIs(report)
	assert.Contains(t, out, "Total Focus Time")
	assert.Contains(t, out, "1.7 hrs")
	assert.Contains(t, out, "(3 sessions)")
	assert.Contains(t, out, "67%")
	assert.Contains(t, out, "🔥 2 days")
	assert.Contains(t, out, "Best Day")
	assert.Contains(t, out, "2024-01-09")
	assert.Contains(t, out, "Active Since")
}

func TestRenderRecent_NewestFirstAndCapped(t *testing.T) {
	var records []domain.SessionRecord
	for i := 0; i < 12; i++ {
		ts := "2024-01-10T0" + string(rune('0'+i%10)) + ":00:00"
		records = append(records, testutil.NewTestRecord(ts, 25, testutil.WithLabel("session")))
	}

	out := renderRecent(records)
	// 10 rows plus header and separator.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 14)
	assert.Contains(t, out, "RECENT SESSIONS")
	assert.Contains(t, out, "25.0m / 25m")
}

func TestIndent(t *testing.T) {
	out := indent("a\n\nb\n", "  ")
	assert.Equal(t, "  a\n\n  b\n", out)
}
