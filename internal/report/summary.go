package report

import (
	"time"

	"par2r/internal/archive"
)

// Summary aggregates the outcomes of one run.
type Summary struct {
	Total    int           `json:"total"`
	OK       int           `json:"ok"`
	Warnings int           `json:"warnings"`
	Errors   int           `json:"errors"`
	Missing  int           `json:"missing"`
	Duration time.Duration `json:"duration_ns"`
}

// Failed reports whether any directory failed.
func (s Summary) Failed() bool {
	return s.Warnings > 0 || s.Errors > 0
}

// Summarize counts outcomes for the provided results.
func Summarize(results []archive.Result, elapsed time.Duration) Summary {
	summary := Summary{Total: len(results), Duration: elapsed}
	for _, result := range results {
		switch Classify(result).Kind {
		case KindOK:
			summary.OK++
		case KindWarn:
			summary.Warnings++
		default:
			summary.Errors++
		}
		if result.Missing() {
			summary.Missing++
		}
	}
	return summary
}
