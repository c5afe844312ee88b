package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/repository"
)

type deadlineService struct {
	simulations repository.SimulationRepo
	observer    UseCaseObserver
}

func NewDeadlineService(simulations repository.SimulationRepo, observers ...UseCaseObserver) DeadlineService {
	return &deadlineService{simulations: simulations, observer: useCaseObserverOrNoop(observers)}
}

// Notices classifies the deadline of every active simulation, most urgent
// first. Archived simulations are never included.
func (s *deadlineService) Notices(ctx context.Context, req app.DeadlineRequest) (resp *app.DeadlineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"mode": string(req.Mode)}
	defer func() { observeUseCase(ctx, s.observer, "deadline-notices", startedAt, fields, err) }()

	sims, err := s.simulations.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing simulations: %w", err)
	}

	now := nowOr(req.Now)
	warn := req.WarningHours
	if warn <= 0 {
		warn = deadline.DefaultWarningHours
	}

	notices := make([]app.DeadlineNotice, 0, len(sims))
	for _, sim := range sims {
		if !inScope(sim, req.SimulationScope) {
			continue
		}
		if sim.Status.Terminal() && !req.IncludeClosed {
			continue
		}
		notices = append(notices, app.DeadlineNotice{
			SimulationID: sim.ID,
			ShortID:      sim.DisplayID(),
			Title:        sim.Title,
			Client:       sim.Client,
			Status:       sim.Status,
			Deadline:     sim.Deadline,
			Result: deadline.Classify(deadline.Input{
				Target:                deadline.AtPtr(sim.Deadline),
				Now:                   now,
				WarningThresholdHours: warn,
				Mode:                  req.Mode,
			}),
		})
	}
	sortNotices(notices)

	summary := summarizeNotices(notices, warn)
	summary.GeneratedAt = now
	fields["total"] = summary.CountsTotal
	fields["passed"] = summary.CountsPassed
	fields["urgent"] = summary.CountsUrgent
	return &app.DeadlineResponse{Summary: summary, Notices: notices}, nil
}

// sortNotices orders by state severity, then nearest deadline, then title.
func sortNotices(notices []app.DeadlineNotice) {
	sort.SliceStable(notices, func(i, j int) bool {
		a, b := notices[i], notices[j]
		if sa, sb := a.Result.State.Severity(), b.Result.State.Severity(); sa != sb {
			return sa < sb
		}
		if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}
		if (a.Deadline == nil) != (b.Deadline == nil) {
			return a.Deadline != nil
		}
		return a.Title < b.Title
	})
}

func summarizeNotices(notices []app.DeadlineNotice, warnHours float64) app.DeadlineSummary {
	sum := app.DeadlineSummary{CountsTotal: len(notices)}
	for _, n := range notices {
		switch n.Result.State {
		case deadline.StatePassed:
			sum.CountsPassed++
		case deadline.StateUrgent:
			sum.CountsUrgent++
		case deadline.StateSoon:
			sum.CountsSoon++
		case deadline.StateNormal:
			sum.CountsNormal++
		}
	}
	sum.PolicyMessage = policyMessage(sum, warnHours)
	return sum
}

func policyMessage(sum app.DeadlineSummary, warnHours float64) string {
	var parts []string
	if sum.CountsPassed > 0 {
		parts = append(parts, fmt.Sprintf("%d past due", sum.CountsPassed))
	}
	if sum.CountsUrgent > 0 {
		parts = append(parts, fmt.Sprintf("%d due within %sh", sum.CountsUrgent, strconv.FormatFloat(warnHours, 'f', -1, 64)))
	}
	if sum.CountsSoon > 0 {
		parts = append(parts, fmt.Sprintf("%d due within %d days", sum.CountsSoon, deadline.SoonDays))
	}
	if len(parts) == 0 {
		return "Nothing pressing"
	}
	return strings.Join(parts, ", ")
}
