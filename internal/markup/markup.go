// Package markup renders the small Markdown subset used in simulation chat
// messages as styled terminal text.
//
// Supported: "# " and "## " headings, "- " and "* " bullets, fenced ```
// blocks, and inline **bold**, *italic* and `code`. Markers without a
// closing partner are rendered literally.
package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	subStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2")).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	italicStyle  = lipgloss.NewStyle().Italic(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598"))
	bulletStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
)

const fence = "```"

// Render converts text to styled terminal output, line by line.
func Render(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fence) {
			inFence = !inFence
			continue
		}
		if inFence {
			out = append(out, "  "+codeStyle.Render(line))
			continue
		}
		out = append(out, renderLine(line))
	}
	return strings.Join(out, "\n")
}

func renderLine(line string) string {
	switch {
	case strings.HasPrefix(line, "## "):
		return subStyle.Render(strings.TrimSpace(line[3:]))
	case strings.HasPrefix(line, "# "):
		return headingStyle.Render(strings.TrimSpace(line[2:]))
	}

	trimmed := strings.TrimLeft(line, " ")
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := line[:len(line)-len(trimmed)]
		return indent + bulletStyle.Render("•") + " " + Inline(trimmed[2:])
	}
	return Inline(line)
}

// Inline renders bold, italic and code spans within a single line.
func Inline(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		switch {
		case s[i] == '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				b.WriteString(codeStyle.Render(s[i+1 : i+1+end]))
				i += end + 2
				continue
			}
		case strings.HasPrefix(s[i:], "**"):
			if end := strings.Index(s[i+2:], "**"); end > 0 {
				b.WriteString(boldStyle.Render(Inline(s[i+2 : i+2+end])))
				i += end + 4
				continue
			}
		case s[i] == '*':
			if end := strings.IndexByte(s[i+1:], '*'); end > 0 {
				b.WriteString(italicStyle.Render(s[i+1 : i+1+end]))
				i += end + 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Plain strips the supported markers without styling. Used where styled
// output would be wrong, such as exported portfolios.
func Plain(text string) string {
	r := strings.NewReplacer("**", "", "`", "")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			continue
		}
		line = strings.TrimPrefix(line, "## ")
		line = strings.TrimPrefix(line, "# ")
		out = append(out, r.Replace(line))
	}
	return strings.Join(out, "\n")
}
