package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/gigsim/internal/db"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/repository"
	"github.com/alexanderramin/gigsim/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db          *sql.DB
	simulations *repository.SQLiteSimulationRepo
	messages    *repository.SQLiteMessageRepo
	uow         db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:          database,
		simulations: repository.NewSQLiteSimulationRepo(database),
		messages:    repository.NewSQLiteMessageRepo(database),
		uow:         db.NewSQLiteUnitOfWork(database),
	}
}

func (r testRepos) seed(t *testing.T, sims ...*domain.Simulation) {
	t.Helper()
	for _, s := range sims {
		require.NoError(t, r.simulations.Create(context.Background(), s))
	}
}

func (r testRepos) seedMessages(t *testing.T, simID string, sender domain.Sender, bodies ...string) {
	t.Helper()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, body := range bodies {
		m := testutil.NewTestMessage(simID, sender, body, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, r.messages.Create(context.Background(), m))
	}
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
