// Package orchestrator coordinates the goalie column repair workflow.
package orchestrator

import (
	"fmt"
)

// Summary represents the overall results of a goaliefix run.
type Summary struct {
	Checked    int // candidate files examined
	Updated    int // files rewritten (or that would be, in dry-run)
	Skipped    int // files in the directory that were not candidates
	ErrorCount int
	Results    []Result
}

// HasErrors returns true if any file failed during the run.
func (s *Summary) HasErrors() bool {
	return s.ErrorCount > 0
}

// PrintSummary returns the one-line closing report.
func (s *Summary) PrintSummary() string {
	return fmt.Sprintf("Checked %d files; updated %d.", s.Checked, s.Updated)
}
