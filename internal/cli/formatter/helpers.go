package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RelativeDateFrom returns a human-friendly relative date such as
// "Tomorrow", "In 5d" or "2w ago".
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// HumanDate renders t as "Today", "Yesterday" or "Jan 2, 2006" relative to now.
func HumanDate(t, now time.Time) string {
	t = t.In(now.Location())
	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp combines HumanDate with a 12-hour clock time.
func HumanTimestamp(t, now time.Time, clock func(time.Time) string) string {
	local := t.In(now.Location())
	return HumanDate(local, now) + " " + clock(local)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StatusPill returns a colored indicator for a simulation status.
func StatusPill(status domain.SimulationStatus) string {
	switch status {
	case domain.StatusCreated:
		return StyleBlue.Render("○ Created")
	case domain.StatusRequirementsSent:
		return StylePurple.Render("◐ Requirements sent")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// SenderLabel names who wrote a chat message.
func SenderLabel(s domain.Sender) string {
	if s == domain.SenderUser {
		return StyleBlue.Bold(true).Render("You")
	}
	return StyleYellow.Bold(true).Render("Client")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Plural picks the singular or plural noun for n.
func Plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
