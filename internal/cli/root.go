package cli

import (
	"github.com/alexanderramin/pomo/internal/store"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/spf13/cobra"
)

// App holds the wired collaborators used by CLI commands.
type App struct {
	Config   *store.ConfigStore
	Sessions *store.SessionStore
	Engine   *timer.Engine

	// IsInteractive reports whether stdin is attached to a terminal.
	// Prompts, forms, and frame redraws are only used when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pomo" command and registers all
// subcommands against the provided App. Invoking pomo without a subcommand
// opens the interactive menu.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pomo",
		Short: "Pomodoro focus timer with streak and productivity analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runMenuLoop(app)
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newStatsCmd(app),
		newConfigCmd(app),
		newCycleCmd(app),
	)

	return root
}
