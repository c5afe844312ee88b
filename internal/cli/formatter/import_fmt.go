package formatter

import (
	"strings"

	"github.com/alexanderramin/gigsim/internal/app"
)

func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Imported "+Plural(len(res.Created), "simulation", "simulations")) + "\n\n")

	rows := make([][]string, 0, len(res.Created))
	for _, s := range res.Created {
		rows = append(rows, []string{s.DisplayID(), Bold(s.Title), StatusPill(s.Status), Plural(s.ImportedMessages, "message", "messages")})
	}
	b.WriteString(RenderTable([]string{"ID", "TITLE", "STATUS", "HISTORY"}, rows))
	return RenderBox("Import", strings.TrimRight(b.String(), "\n"))
}
