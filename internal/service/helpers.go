package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/gigsim/internal/domain"
)

func nowOr(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}

// inScope reports whether sim is named by scope, by ID or short ID.
// An empty scope matches everything.
func inScope(sim *domain.Simulation, scope []string) bool {
	if len(scope) == 0 {
		return true
	}
	for _, ref := range scope {
		if ref == sim.ID || (sim.ShortID != "" && strings.EqualFold(ref, sim.ShortID)) {
			return true
		}
	}
	return false
}

// truncateRunes collapses whitespace and cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
