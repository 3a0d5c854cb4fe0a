package stats

import "time"

// HeatmapCapMinutes is the focus-minutes value that saturates the intensity
// scale. Renderers scale their fill against the same cap.
const HeatmapCapMinutes = 120.0

// HeatmapDay is one cell of the 7-day intensity view, derived from the
// daily buckets.
type HeatmapDay struct {
	Date      string
	Weekday   string // three-letter day name
	Minutes   float64
	Completed int
	Level     int // 0 (no activity) through 4 (at or above the cap)
	IsToday   bool
}

// WeeklyHeatmap maps the last 7 calendar days (oldest first, today last)
// onto intensity levels scaled against HeatmapCapMinutes.
func WeeklyHeatmap(daily map[string]DayBucket, today time.Time) [7]HeatmapDay {
	var out [7]HeatmapDay
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		bucket := daily[day.Format(dayKeyLayout)]
		out[6-i] = HeatmapDay{
			Date:      day.Format(dayKeyLayout),
			Weekday:   day.Format("Mon"),
			Minutes:   bucket.Minutes,
			Completed: bucket.Completed,
			Level:     intensityLevel(bucket.Minutes),
			IsToday:   i == 0,
		}
	}
	return out
}

func intensityLevel(minutes float64) int {
	if minutes <= 0 {
		return 0
	}
	intensity := minutes / HeatmapCapMinutes
	switch {
	case intensity < 0.25:
		return 1
	case intensity < 0.5:
		return 2
	case intensity < 0.75:
		return 3
	default:
		return 4
	}
}
