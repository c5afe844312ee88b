package app

import (
	"time"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
)

type DeadlineRequest struct {
	Now             *time.Time
	WarningHours    float64
	Mode            deadline.Mode
	SimulationScope []string
	// IncludeClosed keeps completed and cancelled simulations in the list.
	IncludeClosed bool
}

func NewDeadlineRequest() DeadlineRequest {
	return DeadlineRequest{
		WarningHours: deadline.DefaultWarningHours,
		Mode:         deadline.ModeCompact,
	}
}

type DeadlineNotice struct {
	SimulationID string
	ShortID      string
	Title        string
	Client       string
	Status       domain.SimulationStatus
	Deadline     *time.Time
	Result       deadline.Result
}

type DeadlineSummary struct {
	GeneratedAt   time.Time
	CountsTotal   int
	CountsPassed  int
	CountsUrgent  int
	CountsSoon    int
	CountsNormal  int
	PolicyMessage string
}

type DeadlineResponse struct {
	Summary DeadlineSummary
	Notices []DeadlineNotice
}
