package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// positiveFinite reports whether v is a usable minute count. ParseFloat
// accepts "nan" and "inf", so v > 0 alone is not enough: NaN and -Inf fail
// the comparison, +Inf needs the explicit check.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// resolveMinutes parses a user-entered duration. Empty, unparsable, or
// non-positive input falls back to the configured default; bad input is
// never an error.
func resolveMinutes(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	minutes, err := strconv.ParseFloat(raw, 64)
	if err != nil || !positiveFinite(minutes) {
		return fallback
	}
	return minutes
}

// askInput runs a single huh input prompt and returns the entered value.
// Aborting the prompt yields the empty string.
func askInput(title, placeholder string) string {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(&value),
	)).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// askConfirm runs a yes/no prompt, defaulting to yes. Aborting answers no.
func askConfirm(title string) bool {
	confirmed := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}
