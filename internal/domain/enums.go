package domain

import "fmt"

type SimulationStatus string

const (
	StatusCreated          SimulationStatus = "created"
	StatusRequirementsSent SimulationStatus = "requirements_sent"
	StatusInProgress       SimulationStatus = "in_progress"
	StatusCompleted        SimulationStatus = "completed"
	StatusCancelled        SimulationStatus = "cancelled"
)

// ValidSimulationStatuses is the canonical set of accepted status strings.
var ValidSimulationStatuses = map[string]bool{
	"created": true, "requirements_sent": true, "in_progress": true,
	"completed": true, "cancelled": true,
}

// ParseSimulationStatus validates s against the canonical status set.
func ParseSimulationStatus(s string) (SimulationStatus, error) {
	if !ValidSimulationStatuses[s] {
		return "", fmt.Errorf("invalid status %q (created|requirements_sent|in_progress|completed|cancelled)", s)
	}
	return SimulationStatus(s), nil
}

// Terminal reports whether no further transitions are allowed.
func (s SimulationStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether a simulation may move from s to next.
// The chat flow only moves forward; any open simulation may be cancelled.
func (s SimulationStatus) CanTransitionTo(next SimulationStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

var statusRank = map[SimulationStatus]int{
	StatusCreated:          0,
	StatusRequirementsSent: 1,
	StatusInProgress:       2,
	StatusCompleted:        3,
}

type Sender string

const (
	SenderUser   Sender = "user"
	SenderClient Sender = "client"
)

// ValidSenders is the canonical set of accepted message senders.
var ValidSenders = map[string]bool{"user": true, "client": true}
