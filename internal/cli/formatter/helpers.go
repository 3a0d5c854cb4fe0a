package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatClock renders a countdown duration as "MM : SS".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d : %02d", total/60, total%60)
}

// FormatShortClock renders a duration as "MM:SS".
func FormatShortClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatMinutes converts fractional minutes into a human-friendly string:
// "1.5 hrs" above an hour, "42 min" below.
func FormatMinutes(min float64) string {
	if min <= 0 {
		return "0 min"
	}
	if min >= 60 {
		return fmt.Sprintf("%.1f hrs", min/60)
	}
	return fmt.Sprintf("%.0f min", min)
}

// Pluralize returns the singular or plural form for a count.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// HumanStamp shortens a session timestamp to "2024-01-02 09:30".
func HumanStamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
