package cli

import (
	"fmt"
	"io"

	"github.com/skovland/pomo/internal/session"
)

// TerminalDisplay renders engine countdown progress to a writer using a
// single in-place updating line per countdown.
type TerminalDisplay struct {
	Out io.Writer
}

// CountdownStarted prints the countdown header.
func (d *TerminalDisplay) CountdownStarted(label string, totalSeconds int) {
	_, _ = fmt.Fprintf(d.Out, "\n%s - %d minutes\n", Title(label), totalSeconds/60)
	_, _ = fmt.Fprintln(d.Out, Rule())
}

// Tick overwrites the countdown line with the remaining time.
func (d *TerminalDisplay) Tick(remainingSeconds int) {
	_, _ = fmt.Fprint(d.Out, CountdownLine(remainingSeconds))
}

// CountdownFinished prints the completion acknowledgment.
func (d *TerminalDisplay) CountdownFinished(label string) {
	_, _ = fmt.Fprintf(d.Out, "\n\n%s complete!\n", label)
}

// SessionRecorded confirms that the session was persisted.
func (d *TerminalDisplay) SessionRecorded(s session.Session) {
	_, _ = fmt.Fprintf(d.Out, "\nPomodoro completed! Great work on '%s'!\n", s.Task)
}
