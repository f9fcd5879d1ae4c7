package discovery

import (
	"testing"
)

var testCriteria = Criteria{
	Reports:   []string{"regular", "playoffs"},
	SeasonMin: 2012,
	SeasonMax: 2024,
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		candidate bool
		reason    RejectReason
	}{
		{"regular in range", "regular-2014-2015.csv", true, ""},
		{"playoffs in range", "playoffs-2024-2025.csv", true, ""},
		{"lower bound", "regular-2012-2013.csv", true, ""},
		{"upper bound", "regular-2024-2025.csv", true, ""},
		{"below range", "regular-2011-2012.csv", false, SeasonOutOfRange},
		{"above range", "regular-2025-2026.csv", false, SeasonOutOfRange},
		{"excluded report", "preseason-2014-2015.csv", false, ReportExcluded},
		{"gibberish", "notes.csv", false, NoMatch},
		{"non-csv", "regular-2014-2015.bak", false, NoMatch},
		{"non-consecutive span", "regular-2014-2016.csv", false, SeasonSpanInvalid},
		{"reversed span", "regular-2015-2014.csv", false, SeasonSpanInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.filename, testCriteria)
			if got.Candidate != tt.candidate {
				t.Fatalf("Classify(%q).Candidate = %v, want %v (reason %s)",
					tt.filename, got.Candidate, tt.candidate, got.Reason)
			}
			if !tt.candidate && got.Reason != tt.reason {
				t.Errorf("Classify(%q).Reason = %s, want %s", tt.filename, got.Reason, tt.reason)
			}
			if tt.candidate && got.Span == nil {
				t.Errorf("Classify(%q) candidate without span", tt.filename)
			}
		})
	}
}

func TestClassifyCandidateCarriesSpan(t *testing.T) {
	got := Classify("playoffs-2019-2020.csv", testCriteria)
	if !got.Candidate {
		t.Fatalf("expected candidate, got reason %s", got.Reason)
	}
	if got.Span.Report != "playoffs" || got.Span.Start != 2019 || got.Span.End != 2020 {
		t.Errorf("unexpected span: %+v", got.Span)
	}
}
