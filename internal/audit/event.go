package audit

import (
	"encoding/json"
	"time"
)

// ISO8601Format is the time format used for audit event timestamps.
const ISO8601Format = time.RFC3339

// Event is one line of the audit log.
type Event struct {
	Timestamp  time.Time
	RunID      RunID
	EventType  EventType
	Path       string
	BeforeHash string
	AfterHash  string
	Metadata   map[string]string
}

// eventJSON is the wire representation. Pointers carry the optional
// fields so omitempty behaves.
type eventJSON struct {
	Timestamp  string            `json:"timestamp"`
	RunID      RunID             `json:"runId"`
	EventType  EventType         `json:"eventType"`
	Path       *string           `json:"path,omitempty"`
	BeforeHash *string           `json:"beforeHash,omitempty"`
	AfterHash  *string           `json:"afterHash,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler for Event. Timestamps are ISO 8601
// and empty optional fields are omitted.
func (e Event) MarshalJSON() ([]byte, error) {
	ej := eventJSON{
		Timestamp: e.Timestamp.Format(ISO8601Format),
		RunID:     e.RunID,
		EventType: e.EventType,
		Metadata:  e.Metadata,
	}

	if e.Path != "" {
		ej.Path = &e.Path
	}
	if e.BeforeHash != "" {
		ej.BeforeHash = &e.BeforeHash
	}
	if e.AfterHash != "" {
		ej.AfterHash = &e.AfterHash
	}

	return json.Marshal(ej)
}

// UnmarshalJSON implements json.Unmarshaler for Event.
func (e *Event) UnmarshalJSON(data []byte) error {
	var ej eventJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}

	t, err := time.Parse(ISO8601Format, ej.Timestamp)
	if err != nil {
		return err
	}

	e.Timestamp = t
	e.RunID = ej.RunID
	e.EventType = ej.EventType
	e.Metadata = ej.Metadata

	if ej.Path != nil {
		e.Path = *ej.Path
	}
	if ej.BeforeHash != nil {
		e.BeforeHash = *ej.BeforeHash
	}
	if ej.AfterHash != nil {
		e.AfterHash = *ej.AfterHash
	}

	return nil
}
