package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveSimulationID accepts a short ID (any case), a full UUID or a
// unique UUID prefix.
func resolveSimulationID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("simulation ID is required")
	}

	sims, err := app.Simulations.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, s := range sims {
		if s.ShortID != "" && strings.EqualFold(s.ShortID, input) {
			return s.ID, nil
		}
	}
	for _, s := range sims {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sims {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("simulation not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("simulation ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
