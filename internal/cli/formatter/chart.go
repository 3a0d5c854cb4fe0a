package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/stats"
)

const chartBarWidth = 24

// RenderHourlyChart renders a horizontal bar chart of focus minutes by hour
// of day. Hours without sessions are omitted.
func RenderHourlyChart(hourly [24]stats.HourBucket) string {
	var b strings.Builder
	b.WriteString(Header("Productivity by Hour"))
	b.WriteString("\n")

	var maxMinutes float64
	for _, h := range hourly {
		if h.Minutes > maxMinutes {
			maxMinutes = h.Minutes
		}
	}
	if maxMinutes == 0 {
		b.WriteString(Dim("No data available.") + "\n")
		return b.String()
	}

	for hour, bucket := range hourly {
		if bucket.Minutes <= 0 {
			continue
		}
		barLen := int(bucket.Minutes / maxMinutes * chartBarWidth)
		if barLen == 0 {
			barLen = 1
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			Dim(fmt.Sprintf("%02d:00", hour)),
			StylePurple.Render(strings.Repeat(filledBlock, barLen)),
			StyleFg.Render(fmt.Sprintf("%.1f", bucket.Minutes)),
		))
	}

	return b.String()
}
