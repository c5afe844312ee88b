package repository

import (
	"context"

	"github.com/alexanderramin/gigsim/internal/domain"
)

// ActivityRow is a simulation joined with its stored message count.
type ActivityRow struct {
	Simulation     *domain.Simulation
	StoredMessages int
}

// Record returns the leveling input for this row.
func (r ActivityRow) Record() domain.ActivityRecord {
	return r.Simulation.Activity(r.StoredMessages)
}

type SimulationRepo interface {
	Create(ctx context.Context, s *domain.Simulation) error
	GetByID(ctx context.Context, id string) (*domain.Simulation, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Simulation, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Simulation, error)
	ListActivity(ctx context.Context, includeArchived bool) ([]ActivityRow, error)
	Update(ctx context.Context, s *domain.Simulation) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListBySimulation(ctx context.Context, simulationID string) ([]*domain.Message, error)
	CountBySimulation(ctx context.Context, simulationID string) (int, error)
	Delete(ctx context.Context, id string) error
}
