package cli

import (
	"fmt"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var minutesFlag, labelFlag string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run one focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load()
			if err != nil {
				return err
			}

			label := labelFlag
			rawMinutes := minutesFlag
			if app.interactive() && !cmd.Flags().Changed("label") && !cmd.Flags().Changed("minutes") {
				fmt.Println()
				fmt.Println("  " + formatter.StyleRed.Render("🍅  New Focus Session"))
				fmt.Println()
				label = askInput("What are you working on?", "press Enter to skip")
				rawMinutes = askInput(
					fmt.Sprintf("Duration in minutes? (default %.0f)", cfg.FocusMinutes), "")
			}

			minutes := resolveMinutes(rawMinutes, cfg.FocusMinutes)
			_, err = app.runSession(domain.SessionFocus, minutesToDuration(minutes), label)
			return err
		},
	}

	cmd.Flags().StringVar(&minutesFlag, "minutes", "", "Session length in minutes (falls back to the configured default)")
	cmd.Flags().StringVar(&labelFlag, "label", "", "What this session is about")

	return cmd
}
