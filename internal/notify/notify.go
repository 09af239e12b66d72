// Package notify implements the session-event notifier: the capability
// that signals session lifecycle transitions to the user via sound or
// speech. Notifiers never fail a session; an unavailable backend
// degrades instead of erroring.
package notify

import (
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Event identifies a session lifecycle transition worth announcing.
type Event string

const (
	EventStart    Event = "start"
	EventComplete Event = "complete"
	EventBreakEnd Event = "break_end"
)

// Mode selects the notification backend, resolved once per process run.
type Mode string

const (
	ModeBeep   Mode = "beep"
	ModeVoice  Mode = "voice"
	ModeSilent Mode = "silent"
)

// ParseMode validates a mode string from config or flags.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBeep, ModeVoice, ModeSilent:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown sound mode %q (expected beep, voice or silent)", s)
}

// Notifier signals session lifecycle events to the user. Implementations
// must not block longer than the notification itself and must never
// abort the countdown or the record append.
type Notifier interface {
	Notify(event Event)
}

// New returns the notifier for the given mode, writing terminal
// sequences to out.
func New(mode Mode, out io.Writer) Notifier {
	switch mode {
	case ModeVoice:
		return &VoiceNotifier{
			Beep:     &BeepNotifier{Out: out},
			LookPath: exec.LookPath,
			Speak:    runSpeech,
		}
	case ModeSilent:
		return SilentNotifier{}
	default:
		return &BeepNotifier{Out: out}
	}
}

// BeepNotifier emits terminal bell pulses. The complete event gets a
// triple pulse; everything else a single one.
type BeepNotifier struct {
	Out io.Writer
	// Sleep is overridable for tests; nil means time.Sleep.
	Sleep func(time.Duration)
}

// Notify writes BEL to the terminal for the given event.
func (n *BeepNotifier) Notify(event Event) {
	pulses := 1
	if event == EventComplete {
		pulses = 3
	}

	sleep := n.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for i := 0; i < pulses; i++ {
		if i > 0 {
			sleep(200 * time.Millisecond)
		}
		_, _ = fmt.Fprint(n.Out, "\a")
	}
}

// phrases maps events to the spoken announcement.
var phrases = map[Event]string{
	EventStart:    "Pomodoro session starting. Stay focused!",
	EventComplete: "Great work! Pomodoro complete. Time for a break.",
	EventBreakEnd: "Break time is over. Ready for the next session?",
}

// speechCommands lists known text-to-speech binaries in preference
// order: macOS say, then the common Linux speech tools.
var speechCommands = []string{"say", "espeak", "spd-say"}

// VoiceNotifier speaks a fixed phrase per event via an external
// text-to-speech command. When no speech backend is available the call
// falls back to beep behavior instead of erroring.
type VoiceNotifier struct {
	Beep Notifier
	// LookPath and Speak are overridable for tests.
	LookPath func(name string) (string, error)
	Speak    func(bin, phrase string) error
}

// Notify speaks the phrase for the given event, degrading to a beep
// when no speech command can be run.
func (n *VoiceNotifier) Notify(event Event) {
	phrase, ok := phrases[event]
	if !ok {
		return
	}

	for _, name := range speechCommands {
		bin, err := n.LookPath(name)
		if err != nil {
			continue
		}
		if err := n.Speak(bin, phrase); err == nil {
			return
		}
	}

	// No usable speech backend for this call.
	n.Beep.Notify(event)
}

// runSpeech invokes a text-to-speech binary and waits for it to finish.
func runSpeech(bin, phrase string) error {
	return exec.Command(bin, phrase).Run()
}

// SilentNotifier discards all events.
type SilentNotifier struct{}

// Notify does nothing.
func (SilentNotifier) Notify(Event) {}
