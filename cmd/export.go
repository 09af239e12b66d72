package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skovland/pomo/internal/session"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session history to various formats",
	Long: `Export the full session history for programmatic use, backup, or
migration.

Available formats:
  json    Export sessions as JSON
  csv     Export sessions as CSV
  yaml    Export sessions as YAML

Examples:
  pomo export json > backup.json
  pomo export csv  > sessions.csv
  pomo export yaml > sessions.yaml`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export session history as JSON",
	Long: `Export all sessions to JSON format.

Output includes metadata (export timestamp, total sessions) and an
array of session objects.`,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON()
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export session history as CSV",
	Long:  `Export all sessions to standard CSV format with headers.`,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV()
	},
}

// exportYAMLCmd represents the export yaml command
var exportYAMLCmd = &cobra.Command{
	Use:   "yaml",
	Short: "Export session history as YAML",
	Long: `Export all sessions to YAML format.

Output includes metadata (export timestamp, total sessions) and a list
of session objects.`,
	Run: func(cmd *cobra.Command, args []string) {
		exportYAML()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportYAMLCmd)
}

// exportMetadata describes an export payload
type exportMetadata struct {
	ExportedAt    time.Time `json:"exported_at" yaml:"exported_at"`
	TotalSessions int       `json:"total_sessions" yaml:"total_sessions"`
}

// exportPayload is the full export document
type exportPayload struct {
	Metadata exportMetadata    `json:"metadata" yaml:"metadata"`
	Sessions []session.Session `json:"sessions" yaml:"sessions"`
}

// buildExportPayload loads the log and wraps it with export metadata
func buildExportPayload() (exportPayload, bool) {
	st, ok := openStore()
	if !ok {
		return exportPayload{}, false
	}

	return exportPayload{
		Metadata: exportMetadata{
			ExportedAt:    time.Now(),
			TotalSessions: len(st.Sessions()),
		},
		Sessions: st.Sessions(),
	}, true
}

// exportJSON handles the export json command logic
func exportJSON() {
	payload, ok := buildExportPayload()
	if !ok {
		return
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode sessions as JSON")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, string(data))
}

// exportCSV handles the export csv command logic
func exportCSV() {
	st, ok := openStore()
	if !ok {
		return
	}

	writer := csv.NewWriter(deps.Stdout)

	rows := [][]string{{"task", "date", "time", "duration_minutes", "completed"}}
	for _, s := range st.Sessions() {
		rows = append(rows, []string{
			s.Task,
			s.Date,
			s.Time,
			strconv.Itoa(s.DurationMinutes),
			strconv.FormatBool(s.Completed),
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// exportYAML handles the export yaml command logic
func exportYAML() {
	payload, ok := buildExportPayload()
	if !ok {
		return
	}

	data, err := yaml.Marshal(payload)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode sessions as YAML")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, string(data))
}
