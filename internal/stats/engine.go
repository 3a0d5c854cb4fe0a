// Package stats derives streaks, daily/hourly aggregates, and heatmap data
// from the session log. Every report is recomputed in full from the log;
// with a single user's history the data volume never justifies caching.
package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// maxStreakLookback bounds the backward walk for the current streak.
const maxStreakLookback = 365

// DayBucket aggregates the focus sessions of one calendar day.
type DayBucket struct {
	Sessions  int
	Minutes   float64
	Completed int
}

// HourBucket aggregates focus sessions by local hour of day, all-time.
type HourBucket struct {
	Sessions int
	Minutes  float64
}

// Report is the full analytics view over the session log.
type Report struct {
	// Empty is true when the log holds no records at all. An empty report
	// carries no derived ratios; callers render an explicit no-data state.
	Empty bool

	TotalFocusMinutes    float64 // actual minutes across all focus sessions
	TotalPlannedMinutes  float64 // planned minutes across all focus sessions
	CompletedMinutes     float64 // actual minutes across completed focus sessions
	FocusSessions        int
	CompletedFocus       int
	CompletionRate       float64 // percentage; 0 when no focus sessions exist
	CurrentStreak        int
	BestStreak           int
	Daily                map[string]DayBucket
	Hourly               [24]HourBucket
	BestDay              string // day with the most focus minutes, "" if none
	BestDayBucket        DayBucket
	WeekMinutes          float64 // trailing 7 calendar days, today inclusive
	WeekSessions         int
	FirstSessionDay      string // date of the earliest record, "" if none
}

// TodayBucket returns the daily bucket for the given day, zero if absent.
func (r *Report) TodayBucket(today time.Time) DayBucket {
	return r.Daily[today.Format(dayKeyLayout)]
}

// Compute builds a report from the full session log. The log is assumed to
// be in chronological append order and is never re-sorted. today anchors the
// current-streak walk and the weekly window.
func Compute(records []domain.SessionRecord, today time.Time) *Report {
	if len(records) == 0 {
		return &Report{Empty: true}
	}

	r := &Report{
		Daily:           make(map[string]DayBucket),
		FirstSessionDay: records[0].Day(),
	}

	for _, rec := range records {
		if rec.Type != domain.SessionFocus {
			continue
		}

		r.FocusSessions++
		r.TotalFocusMinutes += rec.ActualMinutes
		r.TotalPlannedMinutes += rec.PlannedMinutes
		if rec.Completed {
			r.CompletedFocus++
			r.CompletedMinutes += rec.ActualMinutes
		}

		day := r.Daily[rec.Day()]
		day.Sessions++
		day.Minutes += rec.ActualMinutes
		if rec.Completed {
			day.Completed++
		}
		r.Daily[rec.Day()] = day

		hour := rec.Hour()
		r.Hourly[hour].Sessions++
		r.Hourly[hour].Minutes += rec.ActualMinutes
	}

	if r.FocusSessions > 0 {
		r.CompletionRate = float64(r.CompletedFocus) / float64(r.FocusSessions) * 100
	}

	days := sortedDays(r.Daily)
	r.BestStreak = bestStreak(r.Daily, days)
	r.CurrentStreak = currentStreak(r.Daily, today)
	r.BestDay, r.BestDayBucket = bestDay(r.Daily, days)
	r.WeekMinutes, r.WeekSessions = weekWindow(r.Daily, today)

	return r
}

func sortedDays(daily map[string]DayBucket) []string {
	days := make([]string, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	// Day keys are YYYY-MM-DD, so lexical order is chronological order.
	sort.Strings(days)
	return days
}

// bestStreak finds the longest run of consecutive calendar days that each
// have at least one completed focus session. Only days with at least one
// focus session appear in the bucket map; an inactive day (present but with
// zero completed sessions) breaks the chain, and a calendar gap between
// active days restarts it at 1.
func bestStreak(daily map[string]DayBucket, days []string) int {
	best := 0
	streak := 0
	for i, day := range days {
		if daily[day].Completed == 0 {
			streak = 0
			continue
		}
		if i == 0 || days[i-1] != previousDay(day) {
			streak = 1
		} else {
			streak++
		}
		if streak > best {
			best = streak
		}
	}
	return best
}

// currentStreak walks backward day by day from today, counting days with at
// least one completed focus session, and stops at the first day without one.
func currentStreak(daily map[string]DayBucket, today time.Time) int {
	streak := 0
	check := today
	for i := 0; i < maxStreakLookback; i++ {
		bucket, ok := daily[check.Format(dayKeyLayout)]
		if !ok || bucket.Completed == 0 {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// bestDay picks the day with the most focus minutes. Ties resolve to the
// earliest date so the result is deterministic.
func bestDay(daily map[string]DayBucket, days []string) (string, DayBucket) {
	var bestKey string
	var best DayBucket
	for _, day := range days {
		if bucket := daily[day]; bucket.Minutes > best.Minutes {
			bestKey, best = day, bucket
		}
	}
	return bestKey, best
}

// weekWindow sums the 7 calendar-day buckets ending today, inclusive. The
// window is calendar-based, not a 168-hour lookback.
func weekWindow(daily map[string]DayBucket, today time.Time) (float64, int) {
	var minutes float64
	var sessions int
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i).Format(dayKeyLayout)
		if bucket, ok := daily[day]; ok {
			minutes += bucket.Minutes
			sessions += bucket.Sessions
		}
	}
	return minutes, sessions
}

func previousDay(day string) string {
	t, err := time.ParseInLocation(dayKeyLayout, day, time.Local)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dayKeyLayout)
}
