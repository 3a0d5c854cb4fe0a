package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the statistics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStats(app)
		},
	}
}

func showStats(app *App) error {
	records, err := app.Sessions.Load()
	if err != nil {
		return err
	}

	report := stats.Compute(records, time.Now())

	fmt.Println()
	fmt.Println("  " + formatter.StylePurple.Render("📊  Statistics Dashboard"))
	fmt.Println()

	if report.Empty {
		fmt.Println("  " + formatter.Dim("No sessions logged yet. Start a focus session to see stats!"))
		return nil
	}

	fmt.Println(indent(renderKPIs(report), "  "))
	fmt.Println(indent(formatter.RenderWeeklyHeatmap(stats.WeeklyHeatmap(report.Daily, time.Now())), "  "))
	fmt.Println(indent(formatter.RenderHourlyChart(report.Hourly), "  "))
	fmt.Println(indent(renderRecent(records), "  "))
	return nil
}

func renderKPIs(r *stats.Report) string {
	row := func(name, value string) string {
		return fmt.Sprintf("%-24s%s", formatter.Bold(name), value)
	}
	streak := func(n int) string {
		return fmt.Sprintf("%d %s", n, formatter.Pluralize(n, "day", "days"))
	}

	lines := []string{
		formatter.Header("Overview"),
		row("Total Focus Time", fmt.Sprintf("%s  %s",
			formatter.StyleBlue.Render(fmt.Sprintf("%.1f hrs", r.TotalFocusMinutes/60)),
			formatter.Dim(fmt.Sprintf("(%d sessions)", r.FocusSessions)))),
		row("Completed Time", fmt.Sprintf("%s  %s",
			formatter.StyleGreen.Render(fmt.Sprintf("%.1f hrs", r.CompletedMinutes/60)),
			formatter.Dim(fmt.Sprintf("(%d sessions)", r.CompletedFocus)))),
		row("Completion Rate", formatter.StyleYellow.Render(fmt.Sprintf("%.0f%%", r.CompletionRate))),
		row("Current Streak", formatter.StyleOrange.Render("🔥 "+streak(r.CurrentStreak))),
		row("Best Streak", formatter.StyleOrange.Render("🏆 "+streak(r.BestStreak))),
	}

	if r.BestDay != "" {
		lines = append(lines, row("Best Day", fmt.Sprintf("%s  %s",
			formatter.StyleGreen.Render(r.BestDay),
			formatter.Dim(fmt.Sprintf("(%.0f min)", r.BestDayBucket.Minutes)))))
	}
	lines = append(lines, row("This Week", fmt.Sprintf("%s  %s",
		formatter.StyleBlue.Render(fmt.Sprintf("%.0f min", r.WeekMinutes)),
		formatter.Dim(fmt.Sprintf("(%d sessions)", r.WeekSessions)))))
	if r.FirstSessionDay != "" {
		lines = append(lines, row("Active Since", formatter.Dim(r.FirstSessionDay)))
	}

	return strings.Join(lines, "\n") + "\n"
}

// renderRecent lists the ten most recent sessions, newest first.
func renderRecent(records []domain.SessionRecord) string {
	start := len(records) - 10
	if start < 0 {
		start = 0
	}
	recent := records[start:]

	rows := make([][]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		rec := recent[i]
		rows = append(rows, []string{
			formatter.CompletionMark(rec.Completed),
			formatter.Dim(formatter.HumanStamp(rec.StartedAt)),
			formatter.SessionBadge(rec.Type),
			formatter.Dim(rec.Label),
			fmt.Sprintf("%.1fm / %.0fm", rec.ActualMinutes, rec.PlannedMinutes),
		})
	}

	return formatter.Header("Recent Sessions") + "\n" +
		formatter.RenderTable([]string{"", "STARTED", "TYPE", "LABEL", "TIME"}, rows)
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
