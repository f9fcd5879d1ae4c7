// Package csvio reads and atomically rewrites season export files.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// WriteErrorType represents the type of write error.
type WriteErrorType string

const (
	// StagingFailed indicates the temporary file could not be written.
	StagingFailed WriteErrorType = "STAGING_FAILED"
	// PromoteFailed indicates the temporary file could not replace the target.
	PromoteFailed WriteErrorType = "PROMOTE_FAILED"
)

// WriteError represents a failure while rewriting a file. The original
// file is untouched whenever a WriteError is returned.
type WriteError struct {
	Type WriteErrorType
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadRows reads a comma-delimited, double-quoted file into rows.
// Row widths may vary; blank and single-cell marker rows are preserved.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

// WriteRows rewrites path with the given rows: every field double-quoted,
// comma-delimited, one line feed per record. The content is staged to a
// temporary file beside the target and promoted with an atomic rename, so
// an interrupted write never leaves a truncated file in place.
func WriteRows(path string, rows [][]string) error {
	tmpPath := path + ".tmp"

	if err := stageRows(tmpPath, rows); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Type: StagingFailed, Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Type: PromoteFailed, Path: path, Err: err}
	}

	return nil
}

// stageRows writes the full content to tmpPath and syncs it to disk.
func stageRows(tmpPath string, rows [][]string) error {
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(formatRecord(row)); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatRecord renders one record with every field quoted and a trailing
// line feed. encoding/csv only quotes fields that need it, so the export
// format's quote-everything contract is applied here.
func formatRecord(row []string) string {
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}
