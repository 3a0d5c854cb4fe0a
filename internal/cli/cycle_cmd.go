package cli

import (
	"fmt"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/spf13/cobra"
)

func newCycleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "Run the focus/break rotation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				fmt.Println("The cycle needs an interactive terminal.")
				return nil
			}
			return runCycle(app)
		},
	}
}

// runCycle sequences sessions through the rotation. The controller only
// proposes the next action; every break and every continuation is confirmed
// here.
func runCycle(app *App) error {
	cfg, err := app.Config.Load()
	if err != nil {
		return err
	}

	cycle := timer.NewCycle(cfg.SessionsBeforeLongBreak)
	next := timer.ActionFocus

	for {
		switch next {
		case timer.ActionFocus:
			label := askInput("What are you working on?", "press Enter to skip")
			completed, err := app.runSession(domain.SessionFocus, cfg.DurationFor(domain.SessionFocus), label)
			if err != nil {
				return err
			}
			next = cycle.NextAfterFocus(completed)
			if !completed {
				if !askConfirm("Continue the Pomodoro cycle?") {
					return nil
				}
			}

		case timer.ActionShortBreak:
			if askConfirm("Start a short break?") {
				if _, err := app.runSession(domain.SessionShortBreak, cfg.DurationFor(domain.SessionShortBreak), ""); err != nil {
					return err
				}
			}
			next = cycle.NextAfterBreak(timer.ActionShortBreak)
			if !askConfirm("Continue with the next focus session?") {
				return nil
			}

		case timer.ActionLongBreak:
			fmt.Println()
			fmt.Println("  " + formatter.StyleBlue.Render("🏖  Time for a long break!"))
			fmt.Printf("  %s\n", formatter.Dim(fmt.Sprintf(
				"You completed %d focus sessions. Well done!", cycle.CompletedFocus)))
			if askConfirm("Start the long break?") {
				if _, err := app.runSession(domain.SessionLongBreak, cfg.DurationFor(domain.SessionLongBreak), ""); err != nil {
					return err
				}
			}
			next = cycle.NextAfterBreak(timer.ActionLongBreak)
			if !askConfirm("Continue with the next focus session?") {
				return nil
			}
		}
	}
}
