package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_Build(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPortfolioService(repos.simulations, repos.messages)

	older := testutil.NewTestSimulation("Logo", testutil.WithShortID("LOGO01"),
		testutil.WithStatus(domain.StatusCompleted), testutil.WithClient("Acme"),
		testutil.WithCreatedAt(fixedNow.Add(-20*24*time.Hour)))
	newer := testutil.NewTestSimulation("Website", testutil.WithShortID("WEB01"),
		testutil.WithStatus(domain.StatusCompleted), testutil.WithImportedMessages(3),
		testutil.WithCreatedAt(fixedNow.Add(-5*24*time.Hour)))
	open := testutil.NewTestSimulation("App", testutil.WithStatus(domain.StatusInProgress),
		testutil.WithCreatedAt(fixedNow.Add(-24*time.Hour)))
	repos.seed(t, older, newer, open)

	repos.seedMessages(t, older.ID, domain.SenderUser, "Hello, I'm ready")
	repos.seedMessages(t, older.ID, domain.SenderClient, "## Brief\nWe need a **bold** `logo`\nfor   our bakery", "thanks!")

	p, err := svc.Build(context.Background(), app.PortfolioRequest{Now: &fixedNow, Owner: "sam"})
	require.NoError(t, err)

	assert.Equal(t, "sam", p.Owner)
	// 630 for each completed simulation (3 messages apiece), 250 for the app
	assert.Equal(t, 1510, p.XP)
	assert.Equal(t, 2, p.Level)

	require.Len(t, p.Entries, 2)
	assert.Equal(t, "WEB01", p.Entries[0].ShortID)
	assert.Equal(t, 3, p.Entries[0].Messages)
	assert.Equal(t, 630, p.Entries[0].XP)
	assert.Empty(t, p.Entries[0].Brief)

	assert.Equal(t, "LOGO01", p.Entries[1].ShortID)
	assert.Equal(t, "Acme", p.Entries[1].Client)
	assert.Equal(t, "Brief We need a bold logo for our bakery", p.Entries[1].Brief)
}

func TestPortfolioService_BriefTruncated(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPortfolioService(repos.simulations, repos.messages)

	sim := testutil.NewTestSimulation("Essay", testutil.WithStatus(domain.StatusCompleted))
	repos.seed(t, sim)
	repos.seedMessages(t, sim.ID, domain.SenderClient, strings.Repeat("word ", 60))

	p, err := svc.Build(context.Background(), app.PortfolioRequest{Now: &fixedNow})
	require.NoError(t, err)
	require.Len(t, p.Entries, 1)
	brief := p.Entries[0].Brief
	assert.True(t, strings.HasSuffix(brief, "…"))
	assert.Equal(t, briefRunes, len([]rune(brief)))
}
