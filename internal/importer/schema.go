// Package importer reads simulation records exported from the platform's
// REST API and normalizes them into strict domain values.
//
// Exported records are loosely shaped: the message count may live under
// meta.totalMessages or messageCount, the deadline under deadlineTimestamp
// or deadline, and either may be a number of epoch milliseconds, an
// ISO-8601 string, null or missing.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Record is one exported simulation as it appears on the wire.
type Record struct {
	ShortID  string `json:"shortId,omitempty"`
	Title    string `json:"title,omitempty"`
	Name     string `json:"name,omitempty"`
	Client   string `json:"client,omitempty"`
	Status   string `json:"status"`
	Meta     *Meta  `json:"meta,omitempty"`

	MessageCount      json.RawMessage `json:"messageCount,omitempty"`
	DeadlineTimestamp json.RawMessage `json:"deadlineTimestamp,omitempty"`
	Deadline          json.RawMessage `json:"deadline,omitempty"`
}

type Meta struct {
	TotalMessages json.RawMessage `json:"totalMessages,omitempty"`
}

type envelope struct {
	Projects []Record `json:"projects"`
}

// Parse accepts either a bare JSON array of records or an object with a
// "projects" array.
func Parse(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parsing import data: empty input")
	}
	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parsing import data: %w", err)
		}
		return records, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("parsing import data: %w", err)
	}
	return env.Projects, nil
}

// Load reads and parses an export file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return Parse(data)
}
