// Package season parses the season export filename contract.
package season

import (
	"fmt"
	"regexp"
	"strconv"
)

// ParseErrorType represents the type of filename parse error.
type ParseErrorType string

const (
	InvalidFormat ParseErrorType = "INVALID_FORMAT"
)

// ParseError represents a failure to parse a season export filename.
type ParseError struct {
	Type     ParseErrorType
	Filename string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid season filename %q: expected <report>-<YYYY>-<YYYY>.csv", e.Filename)
}

// Span identifies one season export: the report kind and the two years
// the season spans.
type Span struct {
	Report string
	Start  int
	End    int
}

// Consecutive reports whether the span covers two consecutive years,
// the only shape the export grammar produces.
func (s Span) Consecutive() bool {
	return s.End == s.Start+1
}

// filenamePattern matches <report>-<startYear>-<endYear>.csv strictly.
// The report label is validated separately against the configured set.
var filenamePattern = regexp.MustCompile(`^([a-z]+)-(\d{4})-(\d{4})\.csv$`)

// ParseFilename parses a season export filename into a Span.
// It validates only the filename grammar; report-kind and season-range
// policy belong to the discovery layer.
func ParseFilename(filename string) (*Span, error) {
	matches := filenamePattern.FindStringSubmatch(filename)
	if matches == nil {
		return nil, &ParseError{Type: InvalidFormat, Filename: filename}
	}

	start, _ := strconv.Atoi(matches[2])
	end, _ := strconv.Atoi(matches[3])

	return &Span{
		Report: matches[1],
		Start:  start,
		End:    end,
	}, nil
}
