package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for pct in [0,1].
// The bar is red below a third, yellow below two thirds, green above.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderXPBar renders level progress. XP bars fill in purple regardless of
// how far along the level is.
func RenderXPBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	width = max(width, 2)

	filled := percent * width / 100
	bar := StylePurple.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("[%s] %d%%", bar, percent)
}
