// Package engine drives a single pomodoro session from start to done:
// the work countdown, the persisted record, and the optional break
// countdown.
package engine

import (
	"time"

	"github.com/skovland/pomo/internal/notify"
	"github.com/skovland/pomo/internal/session"
)

const (
	workLabel  = "Work Session"
	breakLabel = "Break Time"
)

// Recorder persists completed session records. *storage.Store
// satisfies it.
type Recorder interface {
	Append(s session.Session) error
}

// Display receives countdown progress for rendering. The engine only
// reports remaining seconds once per tick; formatting is up to the
// implementation.
type Display interface {
	CountdownStarted(label string, totalSeconds int)
	Tick(remainingSeconds int)
	CountdownFinished(label string)
	SessionRecorded(s session.Session)
}

// BreakPrompter asks the user whether to take a break after a completed
// work session.
type BreakPrompter interface {
	TakeBreak() bool
}

// Engine runs one pomodoro session per process invocation. The
// countdown is a blocking one-second sleep loop: the whole process
// waits on it, and there is no cancellation path. A session record
// exists if and only if the full work duration elapsed.
type Engine struct {
	WorkMinutes  int
	BreakMinutes int

	Store    Recorder
	Notifier notify.Notifier
	Display  Display
	Prompt   BreakPrompter

	// Now and Sleep are overridable for tests; nil means the real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Run executes one full session for the given task. It returns the
// recorded session once it has been durably persisted. If persisting
// fails, no record is committed and the error surfaces to the caller.
func (e *Engine) Run(task string) (session.Session, error) {
	e.Notifier.Notify(notify.EventStart)

	e.countdown(workLabel, e.WorkMinutes*60)

	// The full work duration elapsed; only now may a record be created.
	e.Notifier.Notify(notify.EventComplete)

	rec := session.New(task, e.now(), e.WorkMinutes)
	if err := e.Store.Append(rec); err != nil {
		return session.Session{}, err
	}
	e.Display.SessionRecorded(rec)

	if e.Prompt.TakeBreak() {
		e.countdown(breakLabel, e.BreakMinutes*60)
		e.Notifier.Notify(notify.EventBreakEnd)
	}

	return rec, nil
}

// countdown blocks for totalSeconds, reporting the remaining time to
// the display once per second.
func (e *Engine) countdown(label string, totalSeconds int) {
	e.Display.CountdownStarted(label, totalSeconds)

	sleep := e.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for remaining := totalSeconds; remaining > 0; remaining-- {
		e.Display.Tick(remaining)
		sleep(time.Second)
	}

	e.Display.CountdownFinished(label)
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
