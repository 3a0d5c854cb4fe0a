package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const heatmapWidth = 20

// Green intensity ramp, index matching stats.HeatmapDay.Level.
var heatmapStyles = [5]lipgloss.Style{
	StyleDim,
	lipgloss.NewStyle().Foreground(lipgloss.Color("#427b58")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#689d6a")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
}

// RenderWeeklyHeatmap renders the 7-day intensity view, oldest day first.
func RenderWeeklyHeatmap(week [7]stats.HeatmapDay) string {
	var b strings.Builder
	b.WriteString(Header("Last 7 Days"))
	b.WriteString("\n")

	for _, day := range week {
		filled := int(day.Minutes / stats.HeatmapCapMinutes * heatmapWidth)
		if filled > heatmapWidth {
			filled = heatmapWidth
		}
		if day.Level > 0 && filled == 0 {
			filled = 1
		}
		block := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, heatmapWidth-filled)

		marker := ""
		if day.IsToday {
			marker = "  " + StyleYellow.Render("◀ today")
		}

		b.WriteString(fmt.Sprintf("%s  %s  %s  %s%s\n",
			Dim(fmt.Sprintf("%4s", day.Weekday)),
			heatmapStyles[day.Level].Render(block),
			StyleFg.Render(fmt.Sprintf("%6.1fm", day.Minutes)),
			Dim(fmt.Sprintf("(%d done)", day.Completed)),
			marker,
		))
	}

	return b.String()
}
