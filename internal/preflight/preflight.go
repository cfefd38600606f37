package preflight

import (
	"par2r/internal/config"
	"par2r/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks relevant to a run over root. Write access is
// only required when write is set (create and repair).
func RunAll(cfg *config.Config, root string, write bool) []Result {
	if cfg == nil {
		return nil
	}
	results := CheckBinaries(cfg)
	if root != "" {
		results = append(results, CheckDirectoryAccess("Root directory", root, write))
	}
	return results
}

// CheckBinaries reports whether the configured par2 binary can be found.
func CheckBinaries(cfg *config.Config) []Result {
	statuses := deps.CheckBinaries(deps.Par2Requirements(cfg.Par2.Binary))
	results := make([]Result, 0, len(statuses))
	for _, status := range statuses {
		result := Result{Name: status.Name, Passed: status.Available || status.Optional, Detail: status.Detail}
		if status.Available {
			result.Detail = status.Path
		}
		results = append(results, result)
	}
	return results
}

// Failures returns the results that did not pass.
func Failures(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}
