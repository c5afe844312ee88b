package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/google/uuid"
)

// Convert turns validated records into simulations stamped with now.
// Call Validate first; Convert assumes statuses and deadlines are valid.
func Convert(records []Record, now time.Time) []*domain.Simulation {
	sims := make([]*domain.Simulation, 0, len(records))
	for _, r := range records {
		act := r.Activity()
		sims = append(sims, &domain.Simulation{
			ID:               uuid.New().String(),
			ShortID:          strings.ToUpper(r.ShortID),
			Title:            r.DisplayTitle(),
			Client:           strings.TrimSpace(r.Client),
			Status:           act.Status,
			Deadline:         act.Deadline,
			ImportedMessages: act.MessageCount,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	return sims
}
