// Package cli provides the CLI presentation layer for the pomo
// application. It renders countdowns, session lists and statistics.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/skovland/pomo/internal/session"
	"github.com/skovland/pomo/internal/stats"
)

// ruleWidth is the width of section separators.
const ruleWidth = 50

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	ruleStyle      = lipgloss.NewStyle().Faint(true)
	countdownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle     = lipgloss.NewStyle().Faint(true)
	taskStyle      = lipgloss.NewStyle().Bold(true)
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// FormatClock renders remaining seconds as zero-padded MM:SS.
func FormatClock(remainingSeconds int) string {
	mins := remainingSeconds / 60
	secs := remainingSeconds % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatFocusTime formats total focus minutes as minutes plus hours.
// Example: "75 minutes (1.2 hours)"
func FormatFocusTime(minutes int) string {
	return fmt.Sprintf("%d minutes (%.1f hours)", minutes, float64(minutes)/60.0)
}

// Title renders a section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Rule returns a horizontal separator of the standard width.
func Rule() string {
	return ruleStyle.Render(strings.Repeat("=", ruleWidth))
}

// CountdownLine renders one tick of the countdown for in-place display.
// The leading carriage return overwrites the previous tick.
func CountdownLine(remainingSeconds int) string {
	return "\r" + countdownStyle.Render(FormatClock(remainingSeconds)) + " remaining "
}

// RenderToday writes today's completed sessions with totals.
func RenderToday(w io.Writer, sessions []session.Session, now time.Time) {
	_, _ = fmt.Fprintf(w, "%s\n", Title(fmt.Sprintf("Today's Sessions (%s)", now.Format(session.DateLayout))))
	_, _ = fmt.Fprintln(w, Rule())

	totalMinutes := 0
	for i, s := range sessions {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, taskStyle.Render(s.Task))
		_, _ = fmt.Fprintf(w, "   %s\n", labelStyle.Render(fmt.Sprintf("Time: %s | Duration: %d min", s.Time, s.DurationMinutes)))
		totalMinutes += s.DurationMinutes
	}

	_, _ = fmt.Fprintf(w, "\nTotal pomodoros today: %d\n", len(sessions))
	_, _ = fmt.Fprintf(w, "Total focus time: %s\n", FormatFocusTime(totalMinutes))
}

// RenderHistory writes the most-recent-first session list.
func RenderHistory(w io.Writer, recent []session.Session, limit int) {
	_, _ = fmt.Fprintf(w, "%s\n", Title(fmt.Sprintf("Recent Sessions (last %d)", limit)))
	_, _ = fmt.Fprintln(w, Rule())

	for i, s := range recent {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, taskStyle.Render(s.Task))
		_, _ = fmt.Fprintf(w, "   %s\n", labelStyle.Render(fmt.Sprintf("%s at %s | %d min", s.Date, s.Time, s.DurationMinutes)))
	}
}

// RenderStats writes the aggregate productivity statistics.
func RenderStats(w io.Writer, st stats.Stats) {
	_, _ = fmt.Fprintf(w, "%s\n", Title("Productivity Statistics"))
	_, _ = fmt.Fprintln(w, Rule())

	_, _ = fmt.Fprintf(w, "Total pomodoros:  %d\n", st.TotalSessions)
	_, _ = fmt.Fprintf(w, "Total focus time: %s\n", FormatFocusTime(st.TotalMinutes))
	_, _ = fmt.Fprintf(w, "Active days:      %d\n", st.ActiveDays)

	if st.ActiveDays > 0 {
		_, _ = fmt.Fprintf(w, "Average per day:  %.1f pomodoros\n", st.AveragePerDay)
		_, _ = fmt.Fprintf(w, "Most productive:  %s (%d pomodoros)\n", st.BusiestDay, st.BusiestCount)
	}

	if len(st.RecentDays) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", Title("Recent Activity"))
		for _, day := range st.RecentDays {
			bar := barStyle.Render(strings.Repeat("*", day.Count))
			_, _ = fmt.Fprintf(w, "  %s: %s (%d)\n", day.Date, bar, day.Count)
		}
	}
}
