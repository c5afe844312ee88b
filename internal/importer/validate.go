package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gigsim/internal/domain"
)

// Validate checks records destined for persistence and returns every
// problem found. Leveling straight from a file does not need this; it
// degrades gracefully instead.
func Validate(records []Record) []error {
	var errs []error
	seen := make(map[string]int)

	for i, r := range records {
		prefix := fmt.Sprintf("projects[%d]", i)

		if _, err := domain.ParseSimulationStatus(strings.TrimSpace(r.Status)); err != nil {
			errs = append(errs, fmt.Errorf("%s.status: %w", prefix, err))
		}
		if t := r.DeadlineTarget(); t.IsSet() && !t.Valid() {
			errs = append(errs, fmt.Errorf("%s.deadline: unparseable date", prefix))
		}
		if r.ShortID != "" {
			sim := domain.Simulation{ShortID: strings.ToUpper(r.ShortID)}
			if err := sim.ValidateShortID(); err != nil {
				errs = append(errs, fmt.Errorf("%s.shortId: %w", prefix, err))
			} else if j, dup := seen[sim.ShortID]; dup {
				errs = append(errs, fmt.Errorf("%s.shortId: %q duplicates projects[%d]", prefix, r.ShortID, j))
			} else {
				seen[sim.ShortID] = i
			}
		}
	}
	return errs
}
