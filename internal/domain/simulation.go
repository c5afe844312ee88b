package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

// Simulation is one simulated freelance project and its client.
type Simulation struct {
	ID       string
	ShortID  string
	Title    string
	Client   string
	Status   SimulationStatus
	Deadline *time.Time

	// ImportedMessages counts chat messages exchanged before the simulation
	// was imported; they are not stored individually.
	ImportedMessages int

	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. LOGO01).
func (s *Simulation) ValidateShortID() error {
	if s.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(s.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. LOGO01)", s.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (s *Simulation) DisplayID() string {
	if s.ShortID != "" {
		return s.ShortID
	}
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// TransitionTo moves the simulation to next, stamping UpdatedAt.
func (s *Simulation) TransitionTo(next SimulationStatus, now time.Time) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("cannot move simulation %s from %s to %s", s.DisplayID(), s.Status, next)
	}
	s.Status = next
	s.UpdatedAt = now
	return nil
}

// Activity snapshots the simulation as a leveling input. storedMessages is
// the number of messages persisted for it.
func (s *Simulation) Activity(storedMessages int) ActivityRecord {
	return NewActivityRecord(s.Status, s.ImportedMessages+storedMessages, s.Deadline)
}
