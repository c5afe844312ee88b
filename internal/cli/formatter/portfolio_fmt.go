package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/gigsim/internal/app"
	"gopkg.in/yaml.v3"
)

// Portfolio export formats.
const (
	PortfolioYAML = "yaml"
	PortfolioJSON = "json"
)

// EncodePortfolio serializes p for sharing outside the terminal.
func EncodePortfolio(p *app.Portfolio, format string) (string, error) {
	switch format {
	case "", PortfolioYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return "", fmt.Errorf("encoding portfolio: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encoding portfolio: %w", err)
		}
		return buf.String(), nil
	case PortfolioJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding portfolio: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown portfolio format %q (yaml|json)", format)
	}
}
