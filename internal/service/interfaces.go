package service

import (
	"context"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/importer"
)

type SimulationService interface {
	Create(ctx context.Context, s *domain.Simulation) error
	GetByID(ctx context.Context, id string) (*domain.Simulation, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Simulation, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Simulation, error)
	Update(ctx context.Context, s *domain.Simulation) error
	SetStatus(ctx context.Context, id string, next domain.SimulationStatus) (*domain.Simulation, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type MessageService interface {
	Send(ctx context.Context, m *domain.Message) error
	List(ctx context.Context, simulationID string) ([]*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

type ProgressService interface {
	Progress(ctx context.Context, req app.ProgressRequest) (*app.ProgressResponse, error)
	ProgressFromRecords(ctx context.Context, req app.ProgressRequest, records []importer.Record) (*app.ProgressResponse, error)
}

type DeadlineService interface {
	Notices(ctx context.Context, req app.DeadlineRequest) (*app.DeadlineResponse, error)
}

type PortfolioService interface {
	Build(ctx context.Context, req app.PortfolioRequest) (*app.Portfolio, error)
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*app.ImportResult, error)
	ImportRecords(ctx context.Context, records []importer.Record) (*app.ImportResult, error)
}
