package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/markup"
)

// FormatMessages renders a chat transcript. Bodies go through the markdown
// subset renderer and are indented under their sender line.
func FormatMessages(sim *domain.Simulation, msgs []*domain.Message, now time.Time) string {
	title := "Chat · " + sim.DisplayID()
	if len(msgs) == 0 {
		return RenderBox(title, Dim("No messages yet."))
	}

	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(SenderLabel(m.Sender) + "  " + Dim(HumanTimestamp(m.SentAt, now, deadline.FormatClockTime)) + "\n")
		body := markup.Render(m.Body)
		for j, line := range strings.Split(body, "\n") {
			if j > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  " + line)
		}
	}
	return RenderBox(title, b.String())
}
