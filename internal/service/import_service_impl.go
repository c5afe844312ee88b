package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/db"
	"github.com/alexanderramin/gigsim/internal/importer"
	"github.com/alexanderramin/gigsim/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*app.ImportResult, error) {
	records, err := importer.Load(path)
	if err != nil {
		return nil, err
	}
	return s.ImportRecords(ctx, records)
}

// ImportRecords validates every record and persists them all or none.
func (s *importService) ImportRecords(ctx context.Context, records []importer.Record) (res *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"records": len(records)}
	defer func() { observeUseCase(ctx, s.observer, "import-simulations", startedAt, fields, err) }()

	if len(records) == 0 {
		return nil, fmt.Errorf("import contains no simulations")
	}
	if errs := importer.Validate(records); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, fmt.Errorf("validation failed: %w", errors.Join(errs...))
	}

	sims := importer.Convert(records, startedAt.Truncate(time.Second))
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSims := repository.NewSQLiteSimulationRepo(tx)
		for _, sim := range sims {
			if err := txSims.Create(ctx, sim); err != nil {
				return fmt.Errorf("creating simulation %q: %w", sim.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app.ImportResult{Created: sims}, nil
}
