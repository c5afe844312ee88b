package deadline

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Target is a deadline instant resolved at the boundary. The zero value
// means no deadline was given.
type Target struct {
	set   bool
	valid bool
	at    time.Time
}

// NoTarget returns the absent target.
func NoTarget() Target { return Target{} }

// At wraps an already-resolved instant.
func At(t time.Time) Target {
	return Target{set: true, valid: true, at: t}
}

// AtPtr treats nil as no deadline.
func AtPtr(t *time.Time) Target {
	if t == nil {
		return NoTarget()
	}
	return At(*t)
}

// Invalid returns a target that was given but could not be resolved.
func Invalid() Target { return Target{set: true} }

// MaxEpochMillis bounds epoch-millisecond timestamps to ±100,000,000 days.
const MaxEpochMillis = 8_640_000_000_000_000

// FromMillis resolves an epoch-millisecond timestamp. Values outside
// ±MaxEpochMillis are invalid.
func FromMillis(ms int64) Target {
	if ms > MaxEpochMillis || ms < -MaxEpochMillis {
		return Invalid()
	}
	return At(time.UnixMilli(ms).UTC())
}

// FromMillisFloat is FromMillis for JSON numbers. NaN, infinities and
// out-of-range values are invalid; fractions are truncated.
func FromMillisFloat(f float64) Target {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > MaxEpochMillis {
		return Invalid()
	}
	return FromMillis(int64(f))
}

// isoLayouts are tried in order before epoch milliseconds, so "2026" is a
// year. Date-only values resolve to UTC midnight; date-times without a zone
// resolve in loc.
var isoLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", true},
	{"2006-01", true},
	{"2006", true},
}

// Parse resolves an ISO-8601 string or a string of epoch milliseconds.
// Blank input is no deadline; anything unparseable is an invalid target.
func Parse(s string) Target {
	return ParseInLocation(s, time.Local)
}

// ParseInLocation is Parse with an explicit zone for zone-less date-times.
func ParseInLocation(s string, loc *time.Location) Target {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoTarget()
	}
	for _, l := range isoLayouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, loc)
		}
		if err == nil {
			return At(t)
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromMillis(ms)
	}
	return Invalid()
}

// IsSet reports whether a deadline was given at all.
func (t Target) IsSet() bool { return t.set }

// Valid reports whether the given deadline resolved to an instant.
func (t Target) Valid() bool { return t.set && t.valid }

// Time returns the resolved instant and whether there is one.
func (t Target) Time() (time.Time, bool) {
	if !t.Valid() {
		return time.Time{}, false
	}
	return t.at, true
}
