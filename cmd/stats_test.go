package cmd

import (
	"strings"
	"testing"
)

func TestShowStats_EmptyLog(t *testing.T) {
	_, stdout, _ := testDeps(t)

	showStats()

	if !strings.Contains(stdout.String(), "No data yet. Complete some pomodoros first!") {
		t.Errorf("Output missing empty-log message:\n%s", stdout.String())
	}
}

func TestShowStats_Aggregates(t *testing.T) {
	d, stdout, _ := testDeps(t)
	seedStorage(t, d, threeSessionLog)

	showStats()
	output := stdout.String()

	for _, want := range []string{
		"Total pomodoros:  3",
		"75 minutes (1.2 hours)",
		"Active days:      2",
		"1.5 pomodoros",
		"2024-01-01 (2 pomodoros)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestShowStats_IgnoresMalformedRecords(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	seedStorage(t, d, `[
		{"task":"good","date":"2024-01-01","time":"09:00:00","duration":25,"completed":true},
		{"task":"bad","date":"2024-01-01","time":"10:00:00","duration":-5,"completed":true}
	]`)

	showStats()

	if !strings.Contains(stdout.String(), "Total pomodoros:  1") {
		t.Errorf("Stats should count only valid records:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "malformed") {
		t.Errorf("Stderr missing dropped-record warning:\n%s", stderr.String())
	}
}
