package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pomo/internal/cli"
	"github.com/alexanderramin/pomo/internal/store"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data directory: env var or default ~/.pomodoro
	dataDir := os.Getenv("POMO_DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = store.DefaultDir()
		if err != nil {
			return err
		}
	}

	sessions := store.NewSessionStore(dataDir)

	app := &cli.App{
		Config:   store.NewConfigStore(dataDir),
		Sessions: sessions,
		Engine:   timer.NewEngine(sessions),
	}

	// Detect interactive terminal for the menu-only entrypoint and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
