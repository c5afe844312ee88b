package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/gigsim/internal/db"
)

// FailingExecUoW is a UnitOfWork whose transaction fails any ExecContext
// whose SQL contains Match. Reads pass through. Use it to prove that
// multi-write use cases roll back as a whole.
type FailingExecUoW struct {
	DB    *sql.DB
	Match string
	Err   error
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if fnErr := fn(ctx, &failingExec{DBTX: tx, match: u.Match, err: u.Err}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	match string
	err   error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
