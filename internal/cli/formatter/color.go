package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateStyle maps a deadline state to its urgency color.
func StateStyle(s deadline.State) lipgloss.Style {
	switch s {
	case deadline.StatePassed, deadline.StateUrgent:
		return StyleRed
	case deadline.StateSoon:
		return StyleYellow
	case deadline.StateNormal:
		return StyleGreen
	case deadline.StateInvalid:
		return StylePurple
	default:
		return StyleDim
	}
}

// StateBadge returns a colored indicator such as "● URGENT".
func StateBadge(s deadline.State) string {
	var icon string
	switch s {
	case deadline.StatePassed:
		icon = "✖"
	case deadline.StateUrgent:
		icon = "▲"
	case deadline.StateSoon, deadline.StateNormal:
		icon = "●"
	case deadline.StateInvalid:
		icon = "?"
	default:
		icon = "○"
	}
	return StateStyle(s).Render(icon + " " + strings.ToUpper(string(s)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
