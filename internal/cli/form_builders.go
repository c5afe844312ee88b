package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func gigsimHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// simAddValues backs the interactive "sim add" form.
type simAddValues struct {
	ShortID  string
	Title    string
	Client   string
	Deadline string
}

func simAddForm(v *simAddValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Short ID").
				Description("3-6 letters and 2-4 digits, e.g. LOGO01").
				Value(&v.ShortID).
				Validate(validateShortID),
			huh.NewInput().
				Title("Title").
				Placeholder("Logo for a neighbourhood bakery").
				Value(&v.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Client").
				Value(&v.Client),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD, YYYY-MM-DDTHH:MM or +36h; blank for none").
				Value(&v.Deadline).
				Validate(validateDeadline),
		),
	).WithTheme(gigsimHuhTheme()).WithShowHelp(false)
}

func messageBodyForm(body *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Message").
				Description("Supports **bold**, *italic*, `code`, - bullets").
				Value(body).
				Validate(validateRequired("message")),
		),
	).WithTheme(gigsimHuhTheme()).WithShowHelp(false)
}

func validateShortID(s string) error {
	sim := domain.Simulation{ShortID: strings.ToUpper(strings.TrimSpace(s))}
	return sim.ValidateShortID()
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDeadline(s string) error {
	_, err := parseDeadlineFlag(s, time.Now())
	return err
}
