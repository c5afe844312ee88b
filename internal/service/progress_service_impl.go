package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/importer"
	"github.com/alexanderramin/gigsim/internal/leveling"
	"github.com/alexanderramin/gigsim/internal/repository"
)

type progressService struct {
	simulations repository.SimulationRepo
	observer    UseCaseObserver
}

func NewProgressService(simulations repository.SimulationRepo, observers ...UseCaseObserver) ProgressService {
	return &progressService{simulations: simulations, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) Progress(ctx context.Context, req app.ProgressRequest) (resp *app.ProgressResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": "store"}
	defer func() { observeUseCase(ctx, s.observer, "progress", startedAt, fields, err) }()

	rows, err := s.simulations.ListActivity(ctx, req.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}

	entries := make([]scoredEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, scoredEntry{
			SimulationID: row.Simulation.ID,
			ShortID:      row.Simulation.DisplayID(),
			Title:        row.Simulation.Title,
			Record:       row.Record(),
		})
	}
	resp = buildProgress(entries, nowOr(req.Now))
	fields["simulations"] = len(entries)
	fields["level"] = resp.Level.Level
	return resp, nil
}

// ProgressFromRecords levels exported records without touching the store.
func (s *progressService) ProgressFromRecords(ctx context.Context, req app.ProgressRequest, records []importer.Record) (resp *app.ProgressResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": "file", "simulations": len(records)}
	defer func() { observeUseCase(ctx, s.observer, "progress", startedAt, fields, err) }()

	entries := make([]scoredEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, scoredEntry{
			ShortID: strings.ToUpper(r.ShortID),
			Title:   r.DisplayTitle(),
			Record:  r.Activity(),
		})
	}
	resp = buildProgress(entries, nowOr(req.Now))
	fields["level"] = resp.Level.Level
	return resp, nil
}

type scoredEntry struct {
	SimulationID string
	ShortID      string
	Title        string
	Record       domain.ActivityRecord
}

func buildProgress(entries []scoredEntry, now time.Time) *app.ProgressResponse {
	records := make([]domain.ActivityRecord, 0, len(entries))
	sims := make([]app.SimulationXP, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record)
		sims = append(sims, app.SimulationXP{
			SimulationID: e.SimulationID,
			ShortID:      e.ShortID,
			Title:        e.Title,
			Status:       e.Record.Status,
			Messages:     e.Record.MessageCount,
			Contribution: leveling.Score(e.Record, now),
		})
	}
	level := leveling.ComputeLevel(records, now)
	return &app.ProgressResponse{
		GeneratedAt: now,
		Level:       level,
		XPToNext:    leveling.XPToNextLevel(level.XP),
		Simulations: sims,
	}
}
