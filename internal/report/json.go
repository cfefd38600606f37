package report

import (
	"encoding/json"
	"io"
	"time"

	"par2r/internal/archive"
)

// Entry is the JSON form of one directory's outcome.
type Entry struct {
	Dir        string   `json:"dir"`
	Archive    string   `json:"archive"`
	Status     Kind     `json:"status"`
	Message    string   `json:"message"`
	ExitCode   int      `json:"exit_code"`
	Invoked    bool     `json:"invoked"`
	Args       []string `json:"args,omitempty"`
	Error      string   `json:"error,omitempty"`
	Output     string   `json:"output,omitempty"`
	DurationMS int64    `json:"duration_ms"`
}

// Document is the JSON report for a whole run.
type Document struct {
	RunID     string         `json:"run_id"`
	Action    archive.Action `json:"action"`
	Root      string         `json:"root"`
	StartedAt time.Time      `json:"started_at"`
	Results   []Entry        `json:"results"`
	Summary   Summary        `json:"summary"`
}

// NewDocument assembles a JSON report.
func NewDocument(runID string, action archive.Action, root string, startedAt time.Time, results []archive.Result, summary Summary) Document {
	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		outcome := Classify(result)
		entry := Entry{
			Dir:        result.Dir,
			Archive:    archive.ArchiveName(result.Dir),
			Status:     outcome.Kind,
			Message:    outcome.Message,
			ExitCode:   result.Code,
			Invoked:    result.Invoked,
			Args:       result.Args,
			Output:     result.Output,
			DurationMS: result.Duration.Milliseconds(),
		}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		entries = append(entries, entry)
	}
	return Document{
		RunID:     runID,
		Action:    action,
		Root:      root,
		StartedAt: startedAt.UTC(),
		Results:   entries,
		Summary:   summary,
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
