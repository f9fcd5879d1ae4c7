// Package discovery selects candidate season files for normalization.
package discovery

import (
	"goaliefix/internal/season"
)

// RejectReason represents why a file is not a candidate.
type RejectReason string

const (
	NoMatch           RejectReason = "NO_MATCH"
	ReportExcluded    RejectReason = "REPORT_EXCLUDED"
	SeasonOutOfRange  RejectReason = "SEASON_OUT_OF_RANGE"
	SeasonSpanInvalid RejectReason = "SEASON_SPAN_INVALID"
)

// Classification represents the result of classifying a file.
// It is either a candidate (with its parsed Span) or rejected with a reason.
type Classification struct {
	Candidate bool
	Span      *season.Span
	Reason    RejectReason
}

// Criteria holds the selection policy for candidate files.
type Criteria struct {
	Reports   []string // accepted report kinds
	SeasonMin int      // inclusive start-year lower bound
	SeasonMax int      // inclusive start-year upper bound
}

// Classify determines whether a filename names a candidate season export.
// A candidate must match the filename grammar, carry an accepted report
// kind, span two consecutive years, and start within the season range.
func Classify(filename string, criteria Criteria) *Classification {
	span, err := season.ParseFilename(filename)
	if err != nil {
		return &Classification{Reason: NoMatch}
	}

	if !containsReport(criteria.Reports, span.Report) {
		return &Classification{Reason: ReportExcluded}
	}

	if !span.Consecutive() {
		return &Classification{Reason: SeasonSpanInvalid}
	}

	if span.Start < criteria.SeasonMin || span.Start > criteria.SeasonMax {
		return &Classification{Reason: SeasonOutOfRange}
	}

	return &Classification{Candidate: true, Span: span}
}

func containsReport(reports []string, report string) bool {
	for _, r := range reports {
		if r == report {
			return true
		}
	}
	return false
}
