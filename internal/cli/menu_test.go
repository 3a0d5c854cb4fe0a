package cli

import (
	"testing"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/stats"
	"github.com/alexanderramin/pomo/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func pressEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func testMenu() menuModel {
	return newMenuModel(domain.DefaultConfig(), "status", "")
}

func TestMenuModel_CursorMovement(t *testing.T) {
	m := testMenu()
	assert.Equal(t, 0, m.cursor)

	updated, _ := m.Update(keyRune('j'))
	m = updated.(menuModel)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(keyRune('k'))
	m = updated.(menuModel)
	assert.Equal(t, 0, m.cursor)

	// The cursor never leaves the list.
	updated, _ = m.Update(keyRune('k'))
	m = updated.(menuModel)
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		updated, _ = m.Update(keyRune('j'))
		m = updated.(menuModel)
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestMenuModel_EnterSelectsCursorItem(t *testing.T) {
	m := testMenu()
	updated, _ := m.Update(keyRune('j'))
	m = updated.(menuModel)

	updated, cmd := m.Update(pressEnter())
	m = updated.(menuModel)
	require.NotNil(t, cmd)
	assert.Equal(t, menuShortBreak, m.action)
}

func TestMenuModel_NumberShortcuts(t *testing.T) {
	tests := []struct {
		digit rune
		want  menuAction
	}{
		{'1', menuFocus},
		{'2', menuShortBreak},
		{'3', menuLongBreak},
		{'4', menuStats},
		{'5', menuConfig},
		{'6', menuExit},
	}

	for _, tt := range tests {
		m := testMenu()
		updated, cmd := m.Update(keyRune(tt.digit))
		m = updated.(menuModel)
		require.NotNil(t, cmd, "digit %c should quit the menu", tt.digit)
		assert.Equal(t, tt.want, m.action)
	}
}

func TestMenuModel_QuitKeysExit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := testMenu()
		updated, cmd := m.Update(msg)
		m = updated.(menuModel)
		require.NotNil(t, cmd)
		assert.Equal(t, menuExit, m.action)
	}
}

func TestMenuModel_ViewListsAllChoices(t *testing.T) {
	view := testMenu().View()
	assert.Contains(t, view, "POMODORO FOCUS TIMER")
	assert.Contains(t, view, "Start Focus Session")
	assert.Contains(t, view, "Statistics Dashboard")
	assert.Contains(t, view, "Exit")
	assert.Contains(t, view, "status")
}

func TestMenuStatusLine(t *testing.T) {
	cfg := domain.DefaultConfig()
	records := []domain.SessionRecord{
		testutil.NewTestRecord("2024-01-10T09:00:00", 25),
		testutil.NewTestRecord("2024-01-10T10:00:00", 50),
	}
	report := stats.Compute(records, testutil.Day("2024-01-10"))

	line := menuStatusLine(report, cfg, testutil.Day("2024-01-10"))
	assert.Contains(t, line, "Streak: 1 day")
	assert.Contains(t, line, "Today: 2/8")
	assert.Contains(t, line, "75 min")
}

func TestMenuStatusLine_EmptyReport(t *testing.T) {
	line := menuStatusLine(stats.Compute(nil, testutil.Day("2024-01-10")), domain.DefaultConfig(), testutil.Day("2024-01-10"))
	assert.Contains(t, line, "Streak: 0 days")
	assert.Contains(t, line, "Today: 0/8")
}
