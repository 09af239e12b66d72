package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalDisplay_CountdownStarted(t *testing.T) {
	var out bytes.Buffer
	d := &TerminalDisplay{Out: &out}

	d.CountdownStarted("Work Session", 1500)
	output := out.String()

	if !strings.Contains(output, "Work Session") {
		t.Errorf("Output missing label:\n%s", output)
	}
	if !strings.Contains(output, "25 minutes") {
		t.Errorf("Output missing duration in minutes:\n%s", output)
	}
}

func TestTerminalDisplay_TickOverwritesLine(t *testing.T) {
	var out bytes.Buffer
	d := &TerminalDisplay{Out: &out}

	d.Tick(1500)
	d.Tick(1499)
	output := out.String()

	if strings.Count(output, "\r") != 2 {
		t.Errorf("Each tick should begin with a carriage return:\n%q", output)
	}
	if !strings.Contains(output, "25:00") || !strings.Contains(output, "24:59") {
		t.Errorf("Ticks missing clock values:\n%q", output)
	}
	if strings.Contains(output, "\n") {
		t.Errorf("Ticks must stay on one line:\n%q", output)
	}
}

func TestTerminalDisplay_CountdownFinished(t *testing.T) {
	var out bytes.Buffer
	d := &TerminalDisplay{Out: &out}

	d.CountdownFinished("Break Time")

	if !strings.Contains(out.String(), "Break Time complete!") {
		t.Errorf("Output missing completion message:\n%s", out.String())
	}
}

func TestTerminalDisplay_SessionRecorded(t *testing.T) {
	var out bytes.Buffer
	d := &TerminalDisplay{Out: &out}

	d.SessionRecorded(makeSession("Study Go", "2024-01-15", "10:00:00", 25))

	if !strings.Contains(out.String(), "Study Go") {
		t.Errorf("Output missing task name:\n%s", out.String())
	}
}
