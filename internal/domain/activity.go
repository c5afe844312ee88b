package domain

import "time"

// ActivityRecord is the minimal project snapshot consumed by leveling.
// Records are value snapshots; build them with NewActivityRecord so the
// message count invariant holds.
type ActivityRecord struct {
	Status       SimulationStatus
	MessageCount int
	Deadline     *time.Time
}

// NewActivityRecord normalizes its inputs: negative message counts become 0.
func NewActivityRecord(status SimulationStatus, messageCount int, deadline *time.Time) ActivityRecord {
	if messageCount < 0 {
		messageCount = 0
	}
	var dl *time.Time
	if deadline != nil {
		t := *deadline
		dl = &t
	}
	return ActivityRecord{Status: status, MessageCount: messageCount, Deadline: dl}
}
