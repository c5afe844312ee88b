package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
)

// FormatSimulationList renders simulations with a compact deadline column.
func FormatSimulationList(sims []*domain.Simulation, now time.Time, warnHours float64) string {
	if len(sims) == 0 {
		return RenderBox("Simulations", Dim("No simulations yet. Start one with `gigsim sim add`."))
	}

	headers := []string{"ID", "TITLE", "CLIENT", "STATUS", "DEADLINE"}
	rows := make([][]string, 0, len(sims))
	for _, s := range sims {
		res := deadline.Classify(deadline.Input{
			Target:                deadline.AtPtr(s.Deadline),
			Now:                   now,
			WarningThresholdHours: warnHours,
			Mode:                  deadline.ModeCompact,
		})
		due := Dim("--")
		if res.State != deadline.StateNone {
			due = StateStyle(res.State).Render(res.DisplayText)
		}
		title := Bold(s.Title)
		if s.ArchivedAt != nil {
			title += Dim(" (archived)")
		}
		rows = append(rows, []string{s.DisplayID(), title, s.Client, StatusPill(s.Status), due})
	}
	return RenderBox("Simulations", RenderTable(headers, rows))
}

// SimulationInspectData holds everything the inspect card shows.
type SimulationInspectData struct {
	Simulation *domain.Simulation
	Messages   int
	XP         int
	Deadline   deadline.Result
	Now        time.Time
}

// FormatSimulationInspect renders a metadata card for one simulation.
func FormatSimulationInspect(d SimulationInspectData) string {
	s := d.Simulation
	var b strings.Builder

	b.WriteString(StyleBold.Render(s.Title) + "\n")
	if s.Client != "" {
		b.WriteString(Dim("for "+s.Client) + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value))
	}
	field("STATUS", StatusPill(s.Status))
	field("ID", s.DisplayID())
	field("UUID", TruncID(s.ID))
	field("CREATED", StyleFg.Render(HumanDate(s.CreatedAt, d.Now)))
	field("MESSAGES", fmt.Sprintf("%d", d.Messages))
	field("XP", StylePurple.Render(fmt.Sprintf("%d", d.XP)))
	if s.Deadline != nil {
		field("DUE", StyleFg.Render(DueLabel(*s.Deadline, d.Now)))
		field("", StateBadge(d.Deadline.State)+"  "+StateStyle(d.Deadline.State).Render(d.Deadline.DisplayText))
	} else {
		field("DUE", Dim("--"))
	}
	if s.ArchivedAt != nil {
		field("ARCHIVED", Dim(HumanDate(*s.ArchivedAt, d.Now)))
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
