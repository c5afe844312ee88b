package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/deadline"
)

// FormatDeadlines renders the notification list produced by the deadline
// service, most urgent first.
func FormatDeadlines(resp *app.DeadlineResponse) string {
	sum := resp.Summary
	var b strings.Builder

	b.WriteString(summaryLine(sum) + "\n")
	b.WriteString(Dim(sum.PolicyMessage))

	if len(resp.Notices) == 0 {
		b.WriteString("\n\n" + Dim("No active simulations."))
		return RenderBox("Deadlines", b.String())
	}

	headers := []string{"ID", "TITLE", "CLIENT", "STATE", "REMAINING", "DUE"}
	rows := make([][]string, 0, len(resp.Notices))
	for _, n := range resp.Notices {
		due := Dim("--")
		if n.Deadline != nil {
			due = Dim(DueLabel(*n.Deadline, sum.GeneratedAt))
		}
		rows = append(rows, []string{
			n.ShortID,
			Bold(n.Title),
			n.Client,
			StateBadge(n.Result.State),
			StateStyle(n.Result.State).Render(n.Result.DisplayText),
			due,
		})
	}
	b.WriteString("\n\n" + RenderTable(headers, rows))
	return RenderBox("Deadlines", b.String())
}

func summaryLine(sum app.DeadlineSummary) string {
	parts := []string{
		StyleRed.Render(fmt.Sprintf("%d passed", sum.CountsPassed)),
		StyleRed.Render(fmt.Sprintf("%d urgent", sum.CountsUrgent)),
		StyleYellow.Render(fmt.Sprintf("%d soon", sum.CountsSoon)),
		StyleGreen.Render(fmt.Sprintf("%d on track", sum.CountsNormal)),
	}
	return Bold(Plural(sum.CountsTotal, "simulation", "simulations")) + Dim("  ·  ") + strings.Join(parts, Dim(" · "))
}

// DueLabel renders a deadline as "Mar 14, 2025 5:30 PM (In 4d)" in now's zone.
func DueLabel(at, now time.Time) string {
	local := at.In(now.Location())
	return fmt.Sprintf("%s %s (%s)", local.Format("Jan 2, 2006"), deadline.FormatClockTime(local), RelativeDateFrom(local, now))
}

// CountdownData is what the live countdown view needs for one frame.
type CountdownData struct {
	ShortID  string
	Title    string
	Client   string
	Deadline time.Time
	HasDate  bool
	Result   deadline.Result
	Now      time.Time
	Width    int
}

// FormatCountdown renders one frame of the live countdown.
func FormatCountdown(d CountdownData) string {
	style := StateStyle(d.Result.State).Bold(true)

	var b strings.Builder
	b.WriteString(Bold(d.Title) + Dim("  "+d.ShortID) + "\n")
	if d.Client != "" {
		b.WriteString(Dim("for "+d.Client) + "\n")
	}
	b.WriteString("\n" + style.Render(d.Result.DisplayText) + "\n\n")
	b.WriteString(StateBadge(d.Result.State))
	if d.HasDate {
		b.WriteString(Dim("  ·  due " + DueLabel(d.Deadline, d.Now)))
	}
	b.WriteString("\n\n" + Dim("q quit · m toggle full/compact"))
	return RenderBox("Countdown", b.String())
}
