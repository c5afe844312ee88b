package app

import "github.com/alexanderramin/gigsim/internal/domain"

// ImportResult holds the outcome of importing exported simulation records.
type ImportResult struct {
	Created []*domain.Simulation
}
