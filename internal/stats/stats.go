// Package stats provides pure aggregation functions over the session
// log. Nothing in this package performs I/O or mutates its input.
package stats

import (
	"sort"
	"time"

	"github.com/skovland/pomo/internal/session"
)

// recentDayWindow is the number of active days shown in the recent
// activity breakdown.
const recentDayWindow = 7

// Stats contains aggregated all-time statistics for the session log
type Stats struct {
	TotalSessions int
	TotalMinutes  int
	PerDay        map[string]int
	ActiveDays    int
	AveragePerDay float64
	BusiestDay    string
	BusiestCount  int
	RecentDays    []DayCount
}

// DayCount pairs an active day with its session count
type DayCount struct {
	Date  string
	Count int
}

// Today filters the log to sessions completed on the same calendar date
// as now, preserving log order.
func Today(sessions []session.Session, now time.Time) []session.Session {
	today := make([]session.Session, 0)
	for _, s := range sessions {
		if s.CompletedOn(now) {
			today = append(today, s)
		}
	}
	return today
}

// Recent returns the last limit sessions in most-recent-first order.
// A log shorter than limit is returned whole, reversed. A non-positive
// limit yields no sessions.
func Recent(sessions []session.Session, limit int) []session.Session {
	if limit <= 0 {
		return []session.Session{}
	}
	if limit > len(sessions) {
		limit = len(sessions)
	}

	recent := make([]session.Session, 0, limit)
	for i := len(sessions) - 1; i >= len(sessions)-limit; i-- {
		recent = append(recent, sessions[i])
	}
	return recent
}

// Aggregate computes all-time statistics over the session log.
// When several days tie for the busiest, the earliest date wins.
// RecentDays holds the most recent seven active days in ascending date
// order, each paired with its session count.
func Aggregate(sessions []session.Session) Stats {
	stats := Stats{PerDay: make(map[string]int)}

	for _, s := range sessions {
		stats.TotalSessions++
		stats.TotalMinutes += s.DurationMinutes
		stats.PerDay[s.Date]++
	}

	stats.ActiveDays = len(stats.PerDay)
	if stats.ActiveDays == 0 {
		return stats
	}

	stats.AveragePerDay = float64(stats.TotalSessions) / float64(stats.ActiveDays)

	// Dates sort lexicographically in YYYY-MM-DD form, so a single sort
	// drives both the tie-break and the recent-activity window.
	days := make([]string, 0, len(stats.PerDay))
	for day := range stats.PerDay {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		if stats.PerDay[day] > stats.BusiestCount {
			stats.BusiestDay = day
			stats.BusiestCount = stats.PerDay[day]
		}
	}

	recentDays := days
	if len(recentDays) > recentDayWindow {
		recentDays = recentDays[len(recentDays)-recentDayWindow:]
	}
	for _, day := range recentDays {
		stats.RecentDays = append(stats.RecentDays, DayCount{Date: day, Count: stats.PerDay[day]})
	}

	return stats
}
