// Package session defines the persisted pomodoro session record.
package session

import "time"

const (
	// DateLayout is the calendar-date format used in persisted records.
	DateLayout = "2006-01-02"
	// TimeLayout is the wall-clock format used in persisted records.
	TimeLayout = "15:04:05"
)

// Session represents a single completed pomodoro session.
// Records are immutable once created; the log only ever grows.
type Session struct {
	Task            string `json:"task" yaml:"task"`
	Date            string `json:"date" yaml:"date"`
	Time            string `json:"time" yaml:"time"`
	DurationMinutes int    `json:"duration" yaml:"duration"`
	Completed       bool   `json:"completed" yaml:"completed"`
}

// New creates a completed session record for the given task.
// Date and time are both derived from the same instant.
func New(task string, completedAt time.Time, durationMinutes int) Session {
	return Session{
		Task:            task,
		Date:            completedAt.Format(DateLayout),
		Time:            completedAt.Format(TimeLayout),
		DurationMinutes: durationMinutes,
		Completed:       true,
	}
}

// Valid reports whether a record loaded from storage is well-formed.
// Only completed records with a non-empty task, a positive duration and
// parseable date/time fields are kept; everything else is dropped on load.
func (s Session) Valid() bool {
	if s.Task == "" || s.DurationMinutes <= 0 || !s.Completed {
		return false
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return false
	}
	if _, err := time.Parse(TimeLayout, s.Time); err != nil {
		return false
	}
	return true
}

// CompletedOn reports whether the session completed on the same calendar
// date as t.
func (s Session) CompletedOn(t time.Time) bool {
	return s.Date == t.Format(DateLayout)
}
