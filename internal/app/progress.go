package app

import (
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/leveling"
)

type ProgressRequest struct {
	Now             *time.Time
	IncludeArchived bool
}

func NewProgressRequest() ProgressRequest {
	return ProgressRequest{IncludeArchived: true}
}

// SimulationXP is one simulation's share of the XP total.
type SimulationXP struct {
	SimulationID string
	ShortID      string
	Title        string
	Status       domain.SimulationStatus
	Messages     int
	Contribution leveling.Contribution
}

type ProgressResponse struct {
	GeneratedAt time.Time
	Level       leveling.LevelResult
	XPToNext    int
	Simulations []SimulationXP
}
