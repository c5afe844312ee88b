package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gigsim/internal/cli"
	"github.com/alexanderramin/gigsim/internal/config"
	"github.com/alexanderramin/gigsim/internal/db"
	"github.com/alexanderramin/gigsim/internal/repository"
	"github.com/alexanderramin/gigsim/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	simRepo := repository.NewSQLiteSimulationRepo(database)
	msgRepo := repository.NewSQLiteMessageRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var obs service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		obs = service.NewLogUseCaseObserver(os.Stderr, cfg.SlogLevel())
	}

	app := &cli.App{
		Simulations: service.NewSimulationService(simRepo, obs),
		Messages:    service.NewMessageService(msgRepo, uow, obs),
		Progress:    service.NewProgressService(simRepo, obs),
		Deadlines:   service.NewDeadlineService(simRepo, obs),
		Portfolio:   service.NewPortfolioService(simRepo, msgRepo, obs),
		Import:      service.NewImportService(uow, obs),
		Config:      cfg,
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
