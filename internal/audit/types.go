// Package audit provides an append-only trail of goaliefix runs.
// Every run and every rewritten file is recorded as one JSONL event,
// so a re-run over already-repaired exports can be traced end to end.
package audit

// RunID is a unique identifier for each program execution, UUID v4 format.
type RunID string

// EventType represents the type of audit event.
type EventType string

const (
	// Run lifecycle events
	EventRunStart EventType = "RUN_START"
	EventRunEnd   EventType = "RUN_END"

	// File events
	EventFileChecked EventType = "FILE_CHECKED"
	EventFileUpdated EventType = "FILE_UPDATED"

	// System events
	EventLogInitialized EventType = "LOG_INITIALIZED"
)

// logFilename is the fixed name of the audit log inside the log directory.
const logFilename = "goaliefix-audit.jsonl"
