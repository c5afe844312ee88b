package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/spf13/pflag"
)

// modeValue is a pflag.Value that only accepts deadline render modes.
type modeValue struct {
	mode *deadline.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) String() string { return string(*v.mode) }
func (v *modeValue) Type() string   { return "mode" }

func (v *modeValue) Set(s string) error {
	m, err := deadline.ParseMode(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

// addModeFlag registers --mode on fs, defaulting to def.
func addModeFlag(fs *pflag.FlagSet, p *deadline.Mode, def deadline.Mode) {
	if def == "" {
		def = deadline.ModeCompact
	}
	*p = def
	fs.Var(&modeValue{mode: p}, "mode", "Countdown format: full (2d 03:04:05) or compact (2d 3h)")
}

// parseDeadlineFlag accepts an ISO-8601 date or date-time, epoch
// milliseconds, or a duration from now such as "+36h". Blank means none.
func parseDeadlineFlag(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		d, err := time.ParseDuration(rest)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid relative deadline %q (e.g. +36h)", s)
		}
		at := now.Add(d).UTC().Truncate(time.Second)
		return &at, nil
	}
	at, ok := deadline.Parse(s).Time()
	if !ok {
		return nil, fmt.Errorf("invalid deadline %q (use YYYY-MM-DD, YYYY-MM-DDTHH:MM or +36h)", s)
	}
	at = at.UTC()
	return &at, nil
}
