package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View and edit settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return printConfig(app)
			}
			return editConfig(app)
		},
	}
}

func printConfig(app *App) error {
	cfg, err := app.Config.Load()
	if err != nil {
		return err
	}

	quotes := "off"
	if cfg.MotivationalQuotes {
		quotes = "on"
	}
	rows := [][]string{
		{"Focus session length (min)", formatMinutesSetting(cfg.FocusMinutes)},
		{"Short break length (min)", formatMinutesSetting(cfg.ShortBreakMinutes)},
		{"Long break length (min)", formatMinutesSetting(cfg.LongBreakMinutes)},
		{"Sessions before long break", strconv.Itoa(cfg.SessionsBeforeLongBreak)},
		{"Daily goal (sessions)", strconv.Itoa(cfg.DailyGoalSessions)},
		{"Motivational quotes", quotes},
	}
	fmt.Print(formatter.RenderBox("Configuration", formatter.RenderTable([]string{"SETTING", "VALUE"}, rows)))
	fmt.Println()
	return nil
}

// editConfig runs the settings form. Each numeric field is validated on
// entry, so an unparsable value never reaches the store.
func editConfig(app *App) error {
	cfg, err := app.Config.Load()
	if err != nil {
		return err
	}

	focus := formatMinutesSetting(cfg.FocusMinutes)
	short := formatMinutesSetting(cfg.ShortBreakMinutes)
	long := formatMinutesSetting(cfg.LongBreakMinutes)
	beforeLong := strconv.Itoa(cfg.SessionsBeforeLongBreak)
	dailyGoal := strconv.Itoa(cfg.DailyGoalSessions)
	quotesOn := cfg.MotivationalQuotes

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Focus session length (min)").Value(&focus).Validate(validatePositiveNumber),
		huh.NewInput().Title("Short break length (min)").Value(&short).Validate(validatePositiveNumber),
		huh.NewInput().Title("Long break length (min)").Value(&long).Validate(validatePositiveNumber),
		huh.NewInput().Title("Sessions before long break").Value(&beforeLong).Validate(validatePositiveInt),
		huh.NewInput().Title("Daily goal (sessions)").Value(&dailyGoal).Validate(validatePositiveInt),
		huh.NewConfirm().Title("Motivational quotes").Affirmative("On").Negative("Off").Value(&quotesOn),
	)).WithShowHelp(false)

	if err := form.Run(); err != nil {
		// Abort keeps the previous settings.
		return nil
	}

	cfg.FocusMinutes = resolveMinutes(focus, cfg.FocusMinutes)
	cfg.ShortBreakMinutes = resolveMinutes(short, cfg.ShortBreakMinutes)
	cfg.LongBreakMinutes = resolveMinutes(long, cfg.LongBreakMinutes)
	cfg.SessionsBeforeLongBreak = resolveCount(beforeLong, cfg.SessionsBeforeLongBreak)
	cfg.DailyGoalSessions = resolveCount(dailyGoal, cfg.DailyGoalSessions)
	cfg.MotivationalQuotes = quotesOn

	if err := app.Config.Save(cfg.Normalize()); err != nil {
		return err
	}
	fmt.Println("  " + formatter.StyleGreen.Render("✓ Saved."))
	return nil
}

func formatMinutesSetting(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

// resolveCount parses an integer setting, keeping the current value for
// unparsable or non-positive input.
func resolveCount(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func validatePositiveNumber(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || !positiveFinite(n) {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

// minutesToDuration converts fractional minutes to a duration.
func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
