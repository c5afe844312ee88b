package deadline

import "fmt"

// Mode selects how a countdown is rendered.
type Mode string

const (
	// ModeCompact is the notification form, e.g. "2d 3h" or "45m remaining".
	ModeCompact Mode = "compact"
	// ModeFull is the ticking countdown form, e.g. "2d 03:04:05".
	ModeFull Mode = "full"
)

// ParseMode accepts "full" or "compact"; blank selects compact.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeCompact):
		return ModeCompact, nil
	case string(ModeFull):
		return ModeFull, nil
	default:
		return "", fmt.Errorf("invalid render mode %q (full|compact)", s)
	}
}
