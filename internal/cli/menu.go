package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/quotes"
	"github.com/alexanderramin/pomo/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuAction int

const (
	menuFocus menuAction = iota
	menuShortBreak
	menuLongBreak
	menuStats
	menuConfig
	menuExit
)

type menuItem struct {
	action menuAction
	title  string
	extra  string
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// menuModel is the bubbletea model for the main menu. It quits with the
// chosen action; the command loop outside the program runs the action.
type menuModel struct {
	items  []menuItem
	cursor int
	action menuAction
	status string
	quote  string
	keys   menuKeyMap
}

func newMenuModel(cfg domain.Config, status, quote string) menuModel {
	return menuModel{
		items: []menuItem{
			{menuFocus, "🍅  Start Focus Session", fmt.Sprintf("(%s)", formatter.FormatMinutes(cfg.FocusMinutes))},
			{menuShortBreak, "☕  Short Break", fmt.Sprintf("(%s)", formatter.FormatMinutes(cfg.ShortBreakMinutes))},
			{menuLongBreak, "🏖   Long Break", fmt.Sprintf("(%s)", formatter.FormatMinutes(cfg.LongBreakMinutes))},
			{menuStats, "📊  Statistics Dashboard", ""},
			{menuConfig, "⚙️   Configuration", ""},
			{menuExit, "🚪  Exit", ""},
		},
		action: menuExit,
		status: status,
		quote:  quote,
		keys:   defaultMenuKeyMap(),
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.action = m.items[m.cursor].action
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.action = menuExit
		return m, tea.Quit
	default:
		// Number shortcuts mirror the menu ordering.
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= byte('0'+len(m.items)) {
			m.action = m.items[s[0]-'1'].action
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.StyleRed.Render("🍅") + "  " +
		formatter.Bold("POMODORO FOCUS TIMER") + "\n")
	b.WriteString("  " + formatter.Dim(strings.Repeat("─", 58)) + "\n\n")

	if m.status != "" {
		b.WriteString("  " + m.status + "\n\n")
	}
	if m.quote != "" {
		b.WriteString(m.quote + "\n")
	}

	b.WriteString("  " + formatter.Bold("What do you want to do?") + "\n\n")
	for i, item := range m.items {
		cursor := "  "
		title := item.title
		if i == m.cursor {
			cursor = formatter.StyleYellow.Render("▸ ")
			title = formatter.Bold(item.title)
		}
		line := fmt.Sprintf("  %s%s) %s", cursor, formatter.Dim(fmt.Sprintf("%d", i+1)), title)
		if item.extra != "" {
			line += "  " + formatter.Dim(item.extra)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

// menuStatusLine renders the quick-stats bar: streak, today's completed
// sessions against the daily goal, and today's focus minutes.
func menuStatusLine(report *stats.Report, cfg domain.Config, today time.Time) string {
	var streak int
	var day stats.DayBucket
	if !report.Empty {
		streak = report.CurrentStreak
		day = report.TodayBucket(today)
	}

	return fmt.Sprintf("%s    %s    %s",
		formatter.StyleOrange.Render(fmt.Sprintf("🔥 Streak: %d %s", streak, formatter.Pluralize(streak, "day", "days"))),
		formatter.StyleFg.Render(fmt.Sprintf("📅 Today: %d/%d", day.Completed, cfg.DailyGoalSessions)),
		formatter.StyleFg.Render(fmt.Sprintf("⏱  %.0f min", day.Minutes)),
	)
}

// runMenuLoop shows the menu, runs the chosen action, and repeats until the
// user exits. Every pass reloads config and sessions so the quick-stats bar
// reflects the latest state.
func runMenuLoop(app *App) error {
	for {
		cfg, err := app.Config.Load()
		if err != nil {
			return err
		}
		records, err := app.Sessions.Load()
		if err != nil {
			return err
		}

		report := stats.Compute(records, time.Now())
		status := menuStatusLine(report, cfg, time.Now())

		var quote string
		if cfg.MotivationalQuotes {
			q := quotes.Pick()
			quote = "  " + formatter.Dim("“"+q.Text+"”") + "\n  " + formatter.Dim("  — "+q.Author) + "\n"
		}

		final, err := tea.NewProgram(newMenuModel(cfg, status, quote)).Run()
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		m, ok := final.(menuModel)
		if !ok {
			return nil
		}

		switch m.action {
		case menuFocus:
			label := askInput("What are you working on?", "press Enter to skip")
			raw := askInput(fmt.Sprintf("Duration in minutes? (default %.0f)", cfg.FocusMinutes), "")
			minutes := resolveMinutes(raw, cfg.FocusMinutes)
			if _, err := app.runSession(domain.SessionFocus, minutesToDuration(minutes), label); err != nil {
				return err
			}
			app.pause()

		case menuShortBreak:
			if _, err := app.runSession(domain.SessionShortBreak, cfg.DurationFor(domain.SessionShortBreak), ""); err != nil {
				return err
			}
			app.pause()

		case menuLongBreak:
			if _, err := app.runSession(domain.SessionLongBreak, cfg.DurationFor(domain.SessionLongBreak), ""); err != nil {
				return err
			}
			app.pause()

		case menuStats:
			if err := showStats(app); err != nil {
				return err
			}
			app.pause()

		case menuConfig:
			if err := editConfig(app); err != nil {
				return err
			}

		case menuExit:
			fmt.Println()
			fmt.Println("  " + formatter.StyleGreen.Render("👋  Goodbye! Keep focusing."))
			return nil
		}
	}
}
