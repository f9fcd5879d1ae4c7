// Package orchestrator coordinates the goalie column repair workflow.
package orchestrator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"goaliefix/internal/audit"
	"goaliefix/internal/config"
	"goaliefix/internal/csvio"
	"goaliefix/internal/discovery"
	"goaliefix/internal/normalizer"
	"goaliefix/internal/scanner"
)

// Options configures a run.
type Options struct {
	DryRun bool          // examine and report, never write
	Audit  *audit.Writer // optional audit trail; nil disables it
}

// auditWriter returns the audit writer, or nil when the run must not
// touch the filesystem. Dry-run leaves no trace anywhere, including the
// audit log.
func (o Options) auditWriter() *audit.Writer {
	if o.DryRun {
		return nil
	}
	return o.Audit
}

// Result represents the outcome of examining a single candidate file.
type Result struct {
	Path    string
	Updated bool
	Success bool
	Error   error
}

// Run scans the configured team directory, repairs the goalie column
// order in every candidate season file, and reports a summary. A missing
// team directory aborts the whole run before anything is written; errors
// on individual files are collected and do not stop the remaining files.
func Run(cfg *config.Configuration, opts Options) (*Summary, error) {
	teamDir := cfg.TeamDir()

	files, err := scanner.Scan(teamDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan team directory: %w", err)
	}

	criteria := discovery.Criteria{
		Reports:   cfg.Reports,
		SeasonMin: cfg.SeasonMin,
		SeasonMax: cfg.SeasonMax,
	}

	summary := &Summary{Results: make([]Result, 0, len(files))}

	for _, file := range files {
		classification := discovery.Classify(file.Name, criteria)
		if !classification.Candidate {
			summary.Skipped++
			log.WithFields(log.Fields{
				"file":   file.Name,
				"reason": classification.Reason,
			}).Debug("skipping non-candidate file")
			continue
		}

		summary.Checked++

		if w := opts.auditWriter(); w != nil {
			if err := w.FileChecked(file.FullPath); err != nil {
				return summary, fmt.Errorf("failed to write audit trail: %w", err)
			}
		}

		result := processFile(file, opts)
		summary.Results = append(summary.Results, result)

		switch {
		case !result.Success:
			summary.ErrorCount++
		case result.Updated:
			summary.Updated++
		}

		log.WithFields(log.Fields{
			"file":    file.Name,
			"report":  classification.Span.Report,
			"season":  classification.Span.Start,
			"updated": result.Updated,
			"dryRun":  opts.DryRun,
		}).Debug("examined candidate file")
	}

	if w := opts.auditWriter(); w != nil {
		if err := w.EndRun(summary.Checked, summary.Updated); err != nil {
			return summary, fmt.Errorf("failed to finalize audit trail: %w", err)
		}
	}

	return summary, nil
}

// processFile reads one candidate, normalizes its rows, and rewrites the
// file when the content changed. Dry-run mode stops short of any write
// or audit entry.
func processFile(file scanner.FileEntry, opts Options) Result {
	result := Result{Path: file.FullPath}

	rows, err := csvio.ReadRows(file.FullPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to read %s: %w", file.Name, err)
		return result
	}

	normalized, changed := normalizer.Normalize(rows)

	if !changed || opts.DryRun {
		result.Success = true
		result.Updated = changed
		return result
	}

	var beforeHash string
	w := opts.auditWriter()
	if w != nil {
		if beforeHash, err = audit.HashFile(file.FullPath); err != nil {
			result.Error = err
			return result
		}
	}

	if err := csvio.WriteRows(file.FullPath, normalized); err != nil {
		result.Error = err
		return result
	}

	if w != nil {
		afterHash, err := audit.HashFile(file.FullPath)
		if err != nil {
			result.Error = err
			return result
		}
		if err := w.FileUpdated(file.FullPath, beforeHash, afterHash); err != nil {
			result.Error = err
			return result
		}
	}

	result.Success = true
	result.Updated = true
	return result
}
