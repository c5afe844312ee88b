package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/leveling"
	"github.com/alexanderramin/gigsim/internal/markup"
	"github.com/alexanderramin/gigsim/internal/repository"
)

// briefRunes caps the client brief quoted in a portfolio entry.
const briefRunes = 120

type portfolioService struct {
	simulations repository.SimulationRepo
	messages    repository.MessageRepo
	observer    UseCaseObserver
}

func NewPortfolioService(simulations repository.SimulationRepo, messages repository.MessageRepo, observers ...UseCaseObserver) PortfolioService {
	return &portfolioService{
		simulations: simulations,
		messages:    messages,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Build lists completed simulations, newest first, under the overall level
// earned across every simulation including archived ones.
func (s *portfolioService) Build(ctx context.Context, req app.PortfolioRequest) (p *app.Portfolio, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "build-portfolio", startedAt, fields, err) }()

	rows, err := s.simulations.ListActivity(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}
	now := nowOr(req.Now)

	records := make([]domain.ActivityRecord, 0, len(rows))
	entries := make([]app.PortfolioEntry, 0)
	for _, row := range rows {
		rec := row.Record()
		records = append(records, rec)
		if rec.Status != domain.StatusCompleted {
			continue
		}
		brief, err := s.brief(ctx, row.Simulation.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, app.PortfolioEntry{
			ShortID:     row.Simulation.DisplayID(),
			Title:       row.Simulation.Title,
			Client:      row.Simulation.Client,
			CompletedAt: row.Simulation.UpdatedAt,
			Messages:    rec.MessageCount,
			XP:          leveling.Score(rec, now).Total(),
			Brief:       brief,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompletedAt.After(entries[j].CompletedAt)
	})

	level := leveling.ComputeLevel(records, now)
	fields["entries"] = len(entries)
	return &app.Portfolio{
		Owner:       req.Owner,
		GeneratedAt: now,
		Level:       level.Level,
		XP:          level.XP,
		Entries:     entries,
	}, nil
}

// brief is the plain text of the client's first message, if any.
func (s *portfolioService) brief(ctx context.Context, simulationID string) (string, error) {
	msgs, err := s.messages.ListBySimulation(ctx, simulationID)
	if err != nil {
		return "", fmt.Errorf("loading messages: %w", err)
	}
	for _, m := range msgs {
		if m.Sender == domain.SenderClient {
			return truncateRunes(markup.Plain(m.Body), briefRunes), nil
		}
	}
	return "", nil
}
