package orchestrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goaliefix/internal/audit"
	"goaliefix/internal/config"
	"goaliefix/internal/csvio"
)

// mixedSeasonFile is a season export with a skaters block and a goalie
// section whose first data row has inverted GP / W-G values.
const mixedSeasonFile = `"Skaters"
"Pos","Player","GP","G","A"
"C","Brown","82","30","41"
"Goalies"
"Pos","Player","GP","W-G","SV%"
"G","Smith","15","18-5-3",".915"
"G","Jones","40","22-10-8",".908"
`

// cleanSeasonFile has no goalie section and must never be rewritten.
const cleanSeasonFile = `"Skaters"
"Pos","Player","GP","G","A"
"C","Brown","82","30","41"
`

func testConfig(t *testing.T) *config.Configuration {
	t.Helper()
	cfg := config.Default()
	cfg.CSVRoot = t.TempDir()
	teamDir := cfg.TeamDir()
	if err := os.MkdirAll(teamDir, 0755); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func writeSeasonFile(t *testing.T, cfg *config.Configuration, name, content string) string {
	t.Helper()
	path := filepath.Join(cfg.TeamDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFixesInvertedGoalieRow(t *testing.T) {
	cfg := testConfig(t)
	path := writeSeasonFile(t, cfg, "regular-2014-2015.csv", mixedSeasonFile)

	summary, err := Run(cfg, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if summary.Checked != 1 || summary.Updated != 1 {
		t.Fatalf("summary = checked %d, updated %d; want 1, 1", summary.Checked, summary.Updated)
	}

	rows, err := csvio.ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}
	// The inverted row swapped; the valid row survived.
	if rows[5][2] != "18-5-3" || rows[5][3] != "15" {
		t.Errorf("inverted goalie row not fixed: %v", rows[5])
	}
	if rows[6][2] != "40" || rows[6][3] != "22-10-8" {
		t.Errorf("valid goalie row changed: %v", rows[6])
	}

	// Rewritten output keeps the quote-everything format.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"G","Smith","18-5-3","15",".915"`) {
		t.Errorf("rewritten file lost quoting:\n%s", data)
	}
}

func TestRunIsIdempotentAcrossInvocations(t *testing.T) {
	cfg := testConfig(t)
	path := writeSeasonFile(t, cfg, "regular-2014-2015.csv", mixedSeasonFile)

	if _, err := Run(cfg, Options{}); err != nil {
		t.Fatal(err)
	}
	afterFirst, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := Run(cfg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Updated != 0 {
		t.Errorf("second run updated %d files, want 0", summary.Updated)
	}

	afterSecond, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(afterFirst) != string(afterSecond) {
		t.Error("second run altered the file")
	}
}

func TestRunLeavesCleanFileByteIdentical(t *testing.T) {
	cfg := testConfig(t)
	path := writeSeasonFile(t, cfg, "playoffs-2016-2017.csv", cleanSeasonFile)

	summary, err := Run(cfg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Checked != 1 || summary.Updated != 0 {
		t.Fatalf("summary = checked %d, updated %d; want 1, 0", summary.Checked, summary.Updated)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != cleanSeasonFile {
		t.Error("unchanged file was rewritten")
	}
}

func TestRunSkipsNonCandidates(t *testing.T) {
	cfg := testConfig(t)
	writeSeasonFile(t, cfg, "regular-2014-2015.csv", cleanSeasonFile)
	writeSeasonFile(t, cfg, "notes.csv", mixedSeasonFile)             // name does not match
	writeSeasonFile(t, cfg, "regular-2011-2012.csv", mixedSeasonFile) // below season range
	writeSeasonFile(t, cfg, "preseason-2014-2015.csv", mixedSeasonFile)

	summary, err := Run(cfg, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if summary.Checked != 1 {
		t.Errorf("Checked = %d, want 1", summary.Checked)
	}
	if summary.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", summary.Skipped)
	}
	if summary.Updated != 0 {
		t.Errorf("Updated = %d, want 0 (skipped files must not be touched)", summary.Updated)
	}
}

func TestRunMissingTeamDirectoryIsFatal(t *testing.T) {
	cfg := config.Default()
	cfg.CSVRoot = filepath.Join(t.TempDir(), "nowhere")

	_, err := Run(cfg, Options{})
	if err == nil {
		t.Fatal("expected error for missing team directory")
	}
}

func TestRunDryRunReportsWithoutWriting(t *testing.T) {
	cfg := testConfig(t)
	path := writeSeasonFile(t, cfg, "regular-2014-2015.csv", mixedSeasonFile)

	summary, err := Run(cfg, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Updated != 1 {
		t.Errorf("dry-run Updated = %d, want 1", summary.Updated)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != mixedSeasonFile {
		t.Error("dry-run modified the file")
	}
}

func TestRunRecordsAuditTrail(t *testing.T) {
	cfg := testConfig(t)
	path := writeSeasonFile(t, cfg, "regular-2014-2015.csv", mixedSeasonFile)

	logDir := t.TempDir()
	writer, err := audit.NewWriter(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := writer.StartRun("test"); err != nil {
		t.Fatal(err)
	}

	summary, err := Run(cfg, Options{Audit: writer})
	if err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if summary.Updated != 1 {
		t.Fatalf("Updated = %d, want 1", summary.Updated)
	}

	logData, err := os.ReadFile(writer.LogPath())
	if err != nil {
		t.Fatal(err)
	}
	logText := string(logData)
	for _, want := range []string{"RUN_START", "FILE_CHECKED", "FILE_UPDATED", "RUN_END", path} {
		if !strings.Contains(logText, want) {
			t.Errorf("audit log missing %q:\n%s", want, logText)
		}
	}
	if !strings.Contains(logText, `"checked":"1"`) || !strings.Contains(logText, `"updated":"1"`) {
		t.Errorf("audit log missing final counts:\n%s", logText)
	}
}

func TestSummaryPrintSummary(t *testing.T) {
	s := &Summary{Checked: 12, Updated: 3}
	if got := s.PrintSummary(); got != "Checked 12 files; updated 3." {
		t.Errorf("PrintSummary() = %q", got)
	}
}
