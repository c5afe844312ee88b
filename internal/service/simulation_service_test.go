package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/repository"
	"github.com/alexanderramin/gigsim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationService_Create(t *testing.T) {
	repos := setupRepos(t)
	rec := &recordingObserver{}
	svc := NewSimulationService(repos.simulations, rec)
	ctx := context.Background()

	sim := &domain.Simulation{Title: "Logo refresh", Client: "Acme", ShortID: "logo01"}
	require.NoError(t, svc.Create(ctx, sim))
	assert.NotEmpty(t, sim.ID)
	assert.Equal(t, "LOGO01", sim.ShortID)
	assert.Equal(t, domain.StatusCreated, sim.Status)

	fetched, err := svc.GetByShortID(ctx, "logo01")
	require.NoError(t, err)
	assert.Equal(t, sim.ID, fetched.ID)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "create-simulation", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
}

func TestSimulationService_Create_Rejects(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	tests := []struct {
		name string
		sim  *domain.Simulation
	}{
		{"empty short id", &domain.Simulation{Title: "T"}},
		{"bad short id", &domain.Simulation{Title: "T", ShortID: "AB1"}},
		{"blank title", &domain.Simulation{Title: "  ", ShortID: "ABC01"}},
		{"bad status", &domain.Simulation{Title: "T", ShortID: "ABC01", Status: "done"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, svc.Create(ctx, tc.sim))
		})
	}

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSimulationService_Create_DuplicateShortID(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.Simulation{Title: "A", ShortID: "DUP01"}))
	err := svc.Create(ctx, &domain.Simulation{Title: "B", ShortID: "DUP01"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateShortID))
}

func TestSimulationService_SetStatus(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	sim := testutil.NewTestSimulation("Landing page")
	repos.seed(t, sim)

	for _, next := range []domain.SimulationStatus{
		domain.StatusRequirementsSent,
		domain.StatusInProgress,
		domain.StatusCompleted,
	} {
		updated, err := svc.SetStatus(ctx, sim.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	_, err := svc.SetStatus(ctx, sim.ID, domain.StatusInProgress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot move")

	stored, err := svc.GetByID(ctx, sim.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
}

func TestSimulationService_SetStatus_InvalidAndMissing(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	sim := testutil.NewTestSimulation("Banner")
	repos.seed(t, sim)

	_, err := svc.SetStatus(ctx, sim.ID, "shipped")
	assert.Error(t, err)

	_, err = svc.SetStatus(ctx, "missing", domain.StatusCancelled)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSimulationService_Update(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	sim := testutil.NewTestSimulation("Brochure", testutil.WithStatus(domain.StatusInProgress))
	repos.seed(t, sim)

	sim.Title = "Tri-fold brochure"
	deadline := fixedNow.Add(72 * time.Hour)
	sim.Deadline = &deadline
	require.NoError(t, svc.Update(ctx, sim))

	stored, err := svc.GetByID(ctx, sim.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tri-fold brochure", stored.Title)
	require.NotNil(t, stored.Deadline)
	assert.True(t, deadline.Equal(*stored.Deadline))

	sim.Status = domain.StatusCreated
	err = svc.Update(ctx, sim)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot move")
}

func TestSimulationService_Delete(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	sim := testutil.NewTestSimulation("Poster")
	repos.seed(t, sim)

	err := svc.Delete(ctx, sim.ID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")

	require.NoError(t, svc.Archive(ctx, sim.ID))
	require.NoError(t, svc.Delete(ctx, sim.ID, false))

	_, err = svc.GetByID(ctx, sim.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSimulationService_DeleteForce(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	sim := testutil.NewTestSimulation("Flyer")
	repos.seed(t, sim)
	require.NoError(t, svc.Delete(ctx, sim.ID, true))

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSimulationService_ArchiveHidesFromList(t *testing.T) {
	repos := setupRepos(t)
	svc := NewSimulationService(repos.simulations)
	ctx := context.Background()

	sim := testutil.NewTestSimulation("Menu")
	repos.seed(t, sim)
	require.NoError(t, svc.Archive(ctx, sim.ID))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.Unarchive(ctx, sim.ID))
	active, err = svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
