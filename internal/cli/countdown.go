package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/charmbracelet/huh"
)

const clearScreen = "\033[H\033[2J"

// interrupt transitions offered after a stop signal.
const (
	choiceResume  = "resume"
	choiceRestart = "restart"
	choiceAbandon = "abandon"
)

// runSession drives one session to a terminal outcome: countdown segments
// with Ctrl+C mapped to context cancellation, and a resume/restart/abandon
// prompt after every interruption. Returns whether the session completed.
func (a *App) runSession(kind domain.SessionType, planned time.Duration, label string) (bool, error) {
	s, err := timer.NewSession(kind, planned, label, time.Now())
	if err != nil {
		return false, err
	}

	if a.interactive() {
		a.Engine.OnTick = func(p timer.Progress) { fmt.Print(renderFrame(s, p)) }
		defer func() { a.Engine.OnTick = nil }()
	}

	for {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		cause := a.Engine.Run(ctx, s)
		stop()

		if cause == timer.CauseCompleted {
			if _, err := a.Engine.Complete(s); err != nil {
				return true, err
			}
			a.showCompleted(s)
			return true, nil
		}

		switch a.askInterruptChoice(s) {
		case choiceResume:
			if s.Remaining() == 0 {
				// The stop signal raced with the countdown finishing.
				if _, err := a.Engine.Complete(s); err != nil {
					return true, err
				}
				a.showCompleted(s)
				return true, nil
			}
		case choiceRestart:
			s.Restart(time.Now())
		default:
			if _, err := a.Engine.Abandon(s); err != nil {
				return false, err
			}
			fmt.Println()
			fmt.Println("  " + formatter.Dim("Partial session saved."))
			return false, nil
		}
	}
}

func (a *App) showCompleted(s *timer.Session) {
	if a.interactive() {
		fmt.Print(clearScreen)
	}
	fmt.Println()
	fmt.Println("  " + formatter.StyleGreen.Render("✅  Session Complete!"))
	fmt.Printf("  %s\n", formatter.Dim(fmt.Sprintf(
		"You finished %s of %s.", formatter.FormatMinutes(s.Planned.Minutes()), s.Kind.Title())))
}

// askInterruptChoice prompts for the post-interruption transition. Without a
// terminal (or when the form itself is aborted) the session is abandoned,
// matching the stop-and-save default.
func (a *App) askInterruptChoice(s *timer.Session) string {
	if !a.interactive() {
		return choiceAbandon
	}

	fmt.Print(clearScreen)
	fmt.Println()
	fmt.Println("  " + formatter.StyleOrange.Render("⏸  Session Interrupted"))
	fmt.Printf("  %s\n\n", formatter.Dim(fmt.Sprintf(
		"%s completed out of %s.",
		formatter.FormatShortClock(s.Elapsed()), formatter.FormatMinutes(s.Planned.Minutes()))))

	choice := choiceResume
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What do you want to do?").
			Options(
				huh.NewOption("Continue timer (resume)", choiceResume),
				huh.NewOption("Restart timer from scratch", choiceRestart),
				huh.NewOption("Stop & save partial session", choiceAbandon),
			).
			Value(&choice),
	)).WithShowHelp(false)

	if err := form.Run(); err != nil {
		// Treat an aborted form like choosing to stop.
		return choiceAbandon
	}
	return choice
}

// renderFrame builds one countdown frame: session badge, big clock,
// progress bar, and the elapsed/remaining line.
func renderFrame(s *timer.Session, p timer.Progress) string {
	style := formatter.SessionStyle(s.Kind)
	rule := formatter.Dim(strings.Repeat("─", 58))

	title := formatter.SessionBadge(s.Kind)
	if s.Label != "" {
		title += "  " + formatter.Dim("— "+s.Label)
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString("\n  " + rule + "\n")
	b.WriteString("  " + title + "\n")
	b.WriteString("  " + rule + "\n\n")
	b.WriteString("       " + style.Bold(true).Render(formatter.FormatClock(p.Remaining)) + "\n\n")
	b.WriteString("       " + formatter.RenderProgress(style, p.Fraction, 40) + "\n\n")
	b.WriteString("       " + formatter.Dim(fmt.Sprintf(
		"Elapsed: %s  |  Remaining: %s",
		formatter.FormatShortClock(p.Elapsed), formatter.FormatShortClock(p.Remaining))) + "\n")
	b.WriteString("       " + formatter.Dim("Press Ctrl+C to pause / stop") + "\n")
	return b.String()
}

// pause waits for Enter so a finished screen stays readable inside the
// interactive menu loop.
func (a *App) pause() {
	if !a.interactive() {
		return
	}
	fmt.Print("\n  " + formatter.Dim("Press Enter to continue…") + " ")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
