package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/skovland/pomo/internal/notify"
	"github.com/skovland/pomo/internal/session"
)

// fakeRecorder captures appended sessions, optionally failing
type fakeRecorder struct {
	appended []session.Session
	err      error
}

func (r *fakeRecorder) Append(s session.Session) error {
	if r.err != nil {
		return r.err
	}
	r.appended = append(r.appended, s)
	return nil
}

// fakeNotifier records the event sequence
type fakeNotifier struct {
	events []notify.Event
}

func (n *fakeNotifier) Notify(event notify.Event) {
	n.events = append(n.events, event)
}

// fakeDisplay records countdown progress
type fakeDisplay struct {
	started  []string
	ticks    []int
	finished []string
	recorded []session.Session
}

func (d *fakeDisplay) CountdownStarted(label string, totalSeconds int) {
	d.started = append(d.started, label)
}

func (d *fakeDisplay) Tick(remainingSeconds int) {
	d.ticks = append(d.ticks, remainingSeconds)
}

func (d *fakeDisplay) CountdownFinished(label string) {
	d.finished = append(d.finished, label)
}

func (d *fakeDisplay) SessionRecorded(s session.Session) {
	d.recorded = append(d.recorded, s)
}

// fakePrompt answers the break question with a fixed choice
type fakePrompt struct {
	answer bool
	asked  int
}

func (p *fakePrompt) TakeBreak() bool {
	p.asked++
	return p.answer
}

// newTestEngine builds an engine with one-minute durations, a no-op
// sleep and a fixed clock.
func newTestEngine(store Recorder, notifier *fakeNotifier, display *fakeDisplay, prompt *fakePrompt) *Engine {
	return &Engine{
		WorkMinutes:  1,
		BreakMinutes: 1,
		Store:        store,
		Notifier:     notifier,
		Display:      display,
		Prompt:       prompt,
		Now: func() time.Time {
			return time.Date(2024, time.January, 15, 14, 25, 0, 0, time.Local)
		},
		Sleep: func(time.Duration) {},
	}
}

func TestRun_RecordsExactlyOneCompletedSession(t *testing.T) {
	store := &fakeRecorder{}
	notifier := &fakeNotifier{}
	display := &fakeDisplay{}
	prompt := &fakePrompt{answer: false}

	eng := newTestEngine(store, notifier, display, prompt)

	rec, err := eng.Run("Study Go")
	if err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	if len(store.appended) != 1 {
		t.Fatalf("Appended %d records, expected 1", len(store.appended))
	}

	got := store.appended[0]
	if got != rec {
		t.Errorf("Returned record %+v differs from appended %+v", rec, got)
	}
	if got.Task != "Study Go" {
		t.Errorf("Task = %q, expected %q", got.Task, "Study Go")
	}
	if !got.Completed {
		t.Error("Completed = false, expected true")
	}
	if got.DurationMinutes != 1 {
		t.Errorf("DurationMinutes = %d, expected configured work minutes 1", got.DurationMinutes)
	}
	if got.Date != "2024-01-15" || got.Time != "14:25:00" {
		t.Errorf("Timestamp = %s %s, expected 2024-01-15 14:25:00", got.Date, got.Time)
	}
}

func TestRun_DecliningBreakSkipsBreakCountdown(t *testing.T) {
	store := &fakeRecorder{}
	notifier := &fakeNotifier{}
	display := &fakeDisplay{}
	prompt := &fakePrompt{answer: false}

	eng := newTestEngine(store, notifier, display, prompt)

	if _, err := eng.Run("task"); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	if prompt.asked != 1 {
		t.Errorf("Break prompt asked %d times, expected 1", prompt.asked)
	}
	if len(display.started) != 1 {
		t.Errorf("Ran %d countdowns, expected 1 (work only)", len(display.started))
	}

	wantEvents := []notify.Event{notify.EventStart, notify.EventComplete}
	if len(notifier.events) != len(wantEvents) {
		t.Fatalf("Events = %v, expected %v", notifier.events, wantEvents)
	}
	for i, event := range wantEvents {
		if notifier.events[i] != event {
			t.Errorf("Event %d = %q, expected %q", i, notifier.events[i], event)
		}
	}

	// Log size unchanged after the decline.
	if len(store.appended) != 1 {
		t.Errorf("Appended %d records, expected 1", len(store.appended))
	}
}

func TestRun_AcceptingBreakRunsBreakCountdown(t *testing.T) {
	store := &fakeRecorder{}
	notifier := &fakeNotifier{}
	display := &fakeDisplay{}
	prompt := &fakePrompt{answer: true}

	eng := newTestEngine(store, notifier, display, prompt)

	if _, err := eng.Run("task"); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	if len(display.started) != 2 {
		t.Fatalf("Ran %d countdowns, expected 2 (work and break)", len(display.started))
	}
	if display.started[1] != "Break Time" {
		t.Errorf("Second countdown label = %q, expected %q", display.started[1], "Break Time")
	}

	wantEvents := []notify.Event{notify.EventStart, notify.EventComplete, notify.EventBreakEnd}
	if len(notifier.events) != len(wantEvents) {
		t.Fatalf("Events = %v, expected %v", notifier.events, wantEvents)
	}

	// The break never produces a second record.
	if len(store.appended) != 1 {
		t.Errorf("Appended %d records, expected 1", len(store.appended))
	}
}

func TestRun_TicksCountDownOncePerSecond(t *testing.T) {
	store := &fakeRecorder{}
	display := &fakeDisplay{}

	eng := newTestEngine(store, &fakeNotifier{}, display, &fakePrompt{})

	if _, err := eng.Run("task"); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	if len(display.ticks) != 60 {
		t.Fatalf("Got %d ticks, expected 60 for a one-minute work session", len(display.ticks))
	}
	if display.ticks[0] != 60 {
		t.Errorf("First tick = %d, expected 60", display.ticks[0])
	}
	if display.ticks[59] != 1 {
		t.Errorf("Last tick = %d, expected 1", display.ticks[59])
	}
	for i := 1; i < len(display.ticks); i++ {
		if display.ticks[i] != display.ticks[i-1]-1 {
			t.Fatalf("Tick %d = %d, expected %d", i, display.ticks[i], display.ticks[i-1]-1)
		}
	}
}

func TestRun_AppendFailureSurfacesAndCommitsNothing(t *testing.T) {
	store := &fakeRecorder{err: errors.New("disk full")}
	display := &fakeDisplay{}
	prompt := &fakePrompt{answer: true}

	eng := newTestEngine(store, &fakeNotifier{}, display, prompt)

	rec, err := eng.Run("task")
	if err == nil {
		t.Fatal("Run() returned nil error, expected append failure")
	}
	if rec != (session.Session{}) {
		t.Errorf("Run() returned record %+v on failure, expected zero value", rec)
	}
	if len(display.recorded) != 0 {
		t.Error("Display acknowledged a record that was never persisted")
	}
	if prompt.asked != 0 {
		t.Error("Break prompt ran after a failed append")
	}
}

func TestRun_NotifierSequenceStartsBeforeCountdown(t *testing.T) {
	notifier := &fakeNotifier{}
	display := &fakeDisplay{}

	eng := newTestEngine(&fakeRecorder{}, notifier, display, &fakePrompt{})

	// Verify the start event fires before the first tick by having the
	// display check the notifier state.
	checked := false
	eng.Display = &tickProbe{fakeDisplay: display, onFirstTick: func() {
		checked = true
		if len(notifier.events) != 1 || notifier.events[0] != notify.EventStart {
			t.Errorf("Events at first tick = %v, expected [start]", notifier.events)
		}
	}}

	if _, err := eng.Run("task"); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}
	if !checked {
		t.Fatal("First tick never fired")
	}
}

// tickProbe wraps fakeDisplay to observe the first tick
type tickProbe struct {
	*fakeDisplay
	onFirstTick func()
	fired       bool
}

func (p *tickProbe) Tick(remainingSeconds int) {
	if !p.fired {
		p.fired = true
		p.onFirstTick()
	}
	p.fakeDisplay.Tick(remainingSeconds)
}
