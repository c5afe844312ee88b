// Package deadline classifies how much time remains until a target instant
// and renders countdown and notification strings for it.
//
// Every function takes the reference time explicitly; callers own the timer
// that re-invokes them.
package deadline

import (
	"fmt"
	"time"
)

type State string

const (
	StateNone    State = "none"
	StateInvalid State = "invalid"
	StatePassed  State = "passed"
	StateUrgent  State = "urgent"
	StateSoon    State = "soon"
	StateNormal  State = "normal"
)

// Severity orders states for notification lists, most pressing first.
func (s State) Severity() int {
	switch s {
	case StatePassed:
		return 0
	case StateUrgent:
		return 1
	case StateSoon:
		return 2
	case StateNormal:
		return 3
	case StateInvalid:
		return 4
	default:
		return 5
	}
}

// HasRemaining reports whether a Result in this state carries a breakdown.
func (s State) HasRemaining() bool {
	return s == StateUrgent || s == StateSoon || s == StateNormal
}

const (
	// DefaultWarningHours is the urgent threshold when none is configured.
	DefaultWarningHours = 24.0
	// SoonDays is the inclusive whole-day horizon for the soon state.
	SoonDays = 3
)

// Canonical texts for states without a countdown.
const (
	PassedText  = "Deadline has passed"
	NoneText    = "No deadline"
	InvalidText = "Invalid deadline"
)

type Input struct {
	Target Target
	Now    time.Time
	// WarningThresholdHours <= 0 selects DefaultWarningHours.
	WarningThresholdHours float64
	Mode                  Mode
}

// Remaining is a floor-based breakdown of the time left. Each unit is
// derived from the total difference, not from cascaded remainders.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

type Result struct {
	State       State
	Remaining   Remaining
	DisplayText string
}

// Classify computes the urgency state, breakdown and display text for in.
// It never fails: unparseable targets yield StateInvalid.
func Classify(in Input) Result {
	if !in.Target.IsSet() {
		return Result{State: StateNone, DisplayText: NoneText}
	}
	target, ok := in.Target.Time()
	if !ok {
		return Result{State: StateInvalid, DisplayText: InvalidText}
	}

	diff := target.Sub(in.Now)
	if diff <= 0 {
		return Result{State: StatePassed, DisplayText: PassedText}
	}

	threshold := in.WarningThresholdHours
	if threshold <= 0 {
		threshold = DefaultWarningHours
	}

	rem := Breakdown(diff)
	var state State
	switch {
	case diff.Hours() <= threshold:
		state = StateUrgent
	case rem.Days <= SoonDays:
		state = StateSoon
	default:
		state = StateNormal
	}

	return Result{
		State:       state,
		Remaining:   rem,
		DisplayText: rem.Render(in.Mode),
	}
}

// Breakdown floors a positive duration into days, hours, minutes and
// seconds. Non-positive durations yield the zero breakdown.
func Breakdown(diff time.Duration) Remaining {
	if diff <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff/time.Hour) % 24,
		Minutes: int(diff/time.Minute) % 60,
		Seconds: int(diff/time.Second) % 60,
	}
}

// Render formats the breakdown for the given mode. The first non-zero
// leading unit selects the shape.
func (r Remaining) Render(mode Mode) string {
	if mode == ModeFull {
		if r.Days > 0 {
			return fmt.Sprintf("%dd %02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
		}
		return fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
	}

	switch {
	case r.Days > 0:
		return fmt.Sprintf("%dd %dh", r.Days, r.Hours)
	case r.Hours > 0:
		return fmt.Sprintf("%dh remaining", r.Hours)
	default:
		return fmt.Sprintf("%dm remaining", r.Minutes)
	}
}

// Render re-renders the result in another mode without recomputing state.
func (r Result) Render(mode Mode) string {
	if r.State.HasRemaining() {
		return r.Remaining.Render(mode)
	}
	return r.DisplayText
}
