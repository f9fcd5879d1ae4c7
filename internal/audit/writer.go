package audit

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Writer handles all write operations to the audit log. It implements
// append-only semantics with fail-fast behavior.
type Writer struct {
	mu         sync.Mutex
	file       *os.File
	writer     *bufio.Writer
	logPath    string
	currentRun RunID
}

// NewWriter opens the audit log for appending, creating the log directory
// and file as needed. A freshly created log starts with a LOG_INITIALIZED
// event.
func NewWriter(logDirectory string) (*Writer, error) {
	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDirectory, logFilename)

	isNewLog := false
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		isNewLog = true
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	w := &Writer{
		file:    file,
		writer:  bufio.NewWriter(file),
		logPath: logPath,
	}

	if isNewLog {
		if err := w.append(Event{EventType: EventLogInitialized}); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write LOG_INITIALIZED event: %w", err)
		}
	}

	return w, nil
}

// LogPath returns the path of the underlying log file.
func (w *Writer) LogPath() string {
	return w.logPath
}

// StartRun generates a run ID and writes the RUN_START event.
func (w *Writer) StartRun(appVersion string) (RunID, error) {
	runID := RunID(uuid.NewString())

	w.mu.Lock()
	defer w.mu.Unlock()

	w.currentRun = runID
	err := w.append(Event{
		RunID:     runID,
		EventType: EventRunStart,
		Metadata:  map[string]string{"appVersion": appVersion},
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// FileChecked records that a candidate file was examined.
func (w *Writer) FileChecked(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.append(Event{
		RunID:     w.currentRun,
		EventType: EventFileChecked,
		Path:      path,
	})
}

// FileUpdated records a rewrite, with content hashes from before and
// after the swap so the change is verifiable later.
func (w *Writer) FileUpdated(path, beforeHash, afterHash string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.append(Event{
		RunID:      w.currentRun,
		EventType:  EventFileUpdated,
		Path:       path,
		BeforeHash: beforeHash,
		AfterHash:  afterHash,
	})
}

// EndRun writes the RUN_END event with the final counts.
func (w *Writer) EndRun(checked, updated int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.append(Event{
		RunID:     w.currentRun,
		EventType: EventRunEnd,
		Metadata: map[string]string{
			"checked": strconv.Itoa(checked),
			"updated": strconv.Itoa(updated),
		},
	})
}

// Close flushes buffered events and closes the log file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// append writes one event as a single JSON line and flushes immediately,
// so a crash cannot lose acknowledged events. Callers hold the mutex.
func (w *Writer) append(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}

	return w.writer.Flush()
}

// HashFile computes the SHA-256 hash of a file's content, hex encoded.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
