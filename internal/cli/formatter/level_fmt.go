package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gigsim/internal/app"
)

const xpBarWidth = 30

// FormatProgress renders the level card followed by a per-simulation XP table.
func FormatProgress(resp *app.ProgressResponse) string {
	var b strings.Builder

	lvl := resp.Level
	b.WriteString(StyleBold.Render(fmt.Sprintf("Level %d", lvl.Level)))
	b.WriteString(Dim(fmt.Sprintf("  ·  %d XP", lvl.XP)) + "\n\n")
	b.WriteString(RenderXPBar(lvl.ProgressPercent, xpBarWidth) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d XP to level %d", resp.XPToNext, lvl.Level+1)))

	if len(resp.Simulations) == 0 {
		b.WriteString("\n\n" + Dim("No simulations yet. Start one with `gigsim sim add`."))
		return RenderBox("Progress", b.String())
	}

	headers := []string{"ID", "TITLE", "STATUS", "MSGS", "BASE", "CHAT", "BONUS", "PENALTY", "XP"}
	rows := make([][]string, 0, len(resp.Simulations))
	for _, s := range resp.Simulations {
		c := s.Contribution
		id := s.ShortID
		if id == "" {
			id = "--"
		}
		penalty := Dim("0")
		if c.Penalty > 0 {
			penalty = StyleRed.Render(fmt.Sprintf("-%d", c.Penalty))
		}
		rows = append(rows, []string{
			id,
			Bold(s.Title),
			StatusPill(s.Status),
			fmt.Sprintf("%d", s.Messages),
			fmt.Sprintf("%d", c.Base),
			fmt.Sprintf("%d", c.Engagement),
			StyleGreen.Render(fmt.Sprintf("+%d", c.Bonus)),
			penalty,
			Bold(fmt.Sprintf("%d", c.Total())),
		})
	}
	b.WriteString("\n\n" + RenderTable(headers, rows))
	return RenderBox("Progress", b.String())
}
