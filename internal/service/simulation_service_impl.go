package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/repository"
	"github.com/google/uuid"
)

type simulationService struct {
	simulations repository.SimulationRepo
	observer    UseCaseObserver
}

func NewSimulationService(simulations repository.SimulationRepo, observers ...UseCaseObserver) SimulationService {
	return &simulationService{simulations: simulations, observer: useCaseObserverOrNoop(observers)}
}

func (s *simulationService) Create(ctx context.Context, sim *domain.Simulation) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"short_id": sim.ShortID}
	defer func() { observeUseCase(ctx, s.observer, "create-simulation", startedAt, fields, err) }()

	sim.ShortID = strings.ToUpper(strings.TrimSpace(sim.ShortID))
	if err = sim.ValidateShortID(); err != nil {
		return err
	}
	if strings.TrimSpace(sim.Title) == "" {
		return fmt.Errorf("simulation title is required")
	}
	if sim.Status == "" {
		sim.Status = domain.StatusCreated
	}
	if _, err = domain.ParseSimulationStatus(string(sim.Status)); err != nil {
		return err
	}
	if sim.ID == "" {
		sim.ID = uuid.New().String()
	}
	sim.CreatedAt = startedAt
	sim.UpdatedAt = startedAt
	fields["simulation_id"] = sim.ID
	return s.simulations.Create(ctx, sim)
}

func (s *simulationService) GetByID(ctx context.Context, id string) (*domain.Simulation, error) {
	return s.simulations.GetByID(ctx, id)
}

func (s *simulationService) GetByShortID(ctx context.Context, shortID string) (*domain.Simulation, error) {
	return s.simulations.GetByShortID(ctx, strings.ToUpper(shortID))
}

func (s *simulationService) List(ctx context.Context, includeArchived bool) ([]*domain.Simulation, error) {
	return s.simulations.List(ctx, includeArchived)
}

// Update persists edits. A status change must be a legal transition from
// the stored status.
func (s *simulationService) Update(ctx context.Context, sim *domain.Simulation) error {
	current, err := s.simulations.GetByID(ctx, sim.ID)
	if err != nil {
		return err
	}
	sim.ShortID = strings.ToUpper(strings.TrimSpace(sim.ShortID))
	if err := sim.ValidateShortID(); err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(sim.Status) {
		return fmt.Errorf("cannot move simulation %s from %s to %s", current.DisplayID(), current.Status, sim.Status)
	}
	sim.UpdatedAt = time.Now().UTC()
	return s.simulations.Update(ctx, sim)
}

func (s *simulationService) SetStatus(ctx context.Context, id string, next domain.SimulationStatus) (sim *domain.Simulation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"simulation_id": id, "status": string(next)}
	defer func() { observeUseCase(ctx, s.observer, "set-status", startedAt, fields, err) }()

	if _, err = domain.ParseSimulationStatus(string(next)); err != nil {
		return nil, err
	}
	sim, err = s.simulations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fields["from"] = string(sim.Status)
	if err = sim.TransitionTo(next, startedAt); err != nil {
		return nil, err
	}
	if err = s.simulations.Update(ctx, sim); err != nil {
		return nil, err
	}
	return sim, nil
}

func (s *simulationService) Archive(ctx context.Context, id string) error {
	return s.simulations.Archive(ctx, id)
}

func (s *simulationService) Unarchive(ctx context.Context, id string) error {
	return s.simulations.Unarchive(ctx, id)
}

func (s *simulationService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		sim, err := s.simulations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sim.ArchivedAt == nil {
			return fmt.Errorf("simulation must be archived before deletion (use --force to override)")
		}
	}
	return s.simulations.Delete(ctx, id)
}
