package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDeadlineMix(t *testing.T, repos testRepos) {
	t.Helper()
	ctx := context.Background()
	in := func(d time.Duration) testutil.SimulationOption { return testutil.WithDeadline(fixedNow.Add(d)) }

	repos.seed(t,
		testutil.NewTestSimulation("Normal", testutil.WithShortID("NRM01"), in(10*24*time.Hour), testutil.WithStatus(domain.StatusInProgress)),
		testutil.NewTestSimulation("Soon", testutil.WithShortID("SON01"), in(2*24*time.Hour)),
		testutil.NewTestSimulation("Urgent", testutil.WithShortID("URG01"), in(5*time.Hour), testutil.WithStatus(domain.StatusRequirementsSent)),
		testutil.NewTestSimulation("Passed", testutil.WithShortID("PAS01"), in(-time.Hour), testutil.WithStatus(domain.StatusInProgress)),
		testutil.NewTestSimulation("Open ended", testutil.WithShortID("OPN01")),
		testutil.NewTestSimulation("Delivered", testutil.WithShortID("DLV01"), in(-2*time.Hour), testutil.WithStatus(domain.StatusCompleted)),
	)

	shelved := testutil.NewTestSimulation("Shelved", testutil.WithShortID("SHL01"), in(time.Hour))
	repos.seed(t, shelved)
	require.NoError(t, repos.simulations.Archive(ctx, shelved.ID))
}

func TestDeadlineService_SortsAndSummarizes(t *testing.T) {
	repos := setupRepos(t)
	seedDeadlineMix(t, repos)
	svc := NewDeadlineService(repos.simulations)

	req := app.NewDeadlineRequest()
	req.Now = &fixedNow
	resp, err := svc.Notices(context.Background(), req)
	require.NoError(t, err)

	var order []string
	var states []deadline.State
	for _, n := range resp.Notices {
		order = append(order, n.ShortID)
		states = append(states, n.Result.State)
	}
	assert.Equal(t, []string{"PAS01", "URG01", "SON01", "NRM01", "OPN01"}, order)
	assert.Equal(t, []deadline.State{
		deadline.StatePassed, deadline.StateUrgent, deadline.StateSoon, deadline.StateNormal, deadline.StateNone,
	}, states)

	sum := resp.Summary
	assert.Equal(t, 5, sum.CountsTotal)
	assert.Equal(t, 1, sum.CountsPassed)
	assert.Equal(t, 1, sum.CountsUrgent)
	assert.Equal(t, 1, sum.CountsSoon)
	assert.Equal(t, 1, sum.CountsNormal)
	assert.Equal(t, "1 past due, 1 due within 24h, 1 due within 3 days", sum.PolicyMessage)
	assert.Equal(t, fixedNow, sum.GeneratedAt)

	assert.Equal(t, "5h remaining", resp.Notices[1].Result.DisplayText)
	assert.Equal(t, deadline.PassedText, resp.Notices[0].Result.DisplayText)
}

func TestDeadlineService_FullModeAndThreshold(t *testing.T) {
	repos := setupRepos(t)
	seedDeadlineMix(t, repos)
	svc := NewDeadlineService(repos.simulations)

	resp, err := svc.Notices(context.Background(), app.DeadlineRequest{
		Now:             &fixedNow,
		WarningHours:    72,
		Mode:            deadline.ModeFull,
		SimulationScope: []string{"son01", "urg01"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Notices, 2)

	assert.Equal(t, "URG01", resp.Notices[0].ShortID)
	assert.Equal(t, "05:00:00", resp.Notices[0].Result.DisplayText)
	assert.Equal(t, deadline.StateUrgent, resp.Notices[1].Result.State)
	assert.Equal(t, "2d 00:00:00", resp.Notices[1].Result.DisplayText)
	assert.Equal(t, "2 due within 72h", resp.Summary.PolicyMessage)
}

func TestDeadlineService_IncludeClosed(t *testing.T) {
	repos := setupRepos(t)
	seedDeadlineMix(t, repos)
	svc := NewDeadlineService(repos.simulations)

	resp, err := svc.Notices(context.Background(), app.DeadlineRequest{Now: &fixedNow, IncludeClosed: true})
	require.NoError(t, err)
	require.Len(t, resp.Notices, 6)
	assert.Equal(t, "DLV01", resp.Notices[0].ShortID, "earliest passed deadline sorts first")
	assert.Equal(t, 2, resp.Summary.CountsPassed)
}

func TestDeadlineService_Empty(t *testing.T) {
	repos := setupRepos(t)
	svc := NewDeadlineService(repos.simulations)

	resp, err := svc.Notices(context.Background(), app.DeadlineRequest{Now: &fixedNow})
	require.NoError(t, err)
	assert.Empty(t, resp.Notices)
	assert.Equal(t, "Nothing pressing", resp.Summary.PolicyMessage)
}
