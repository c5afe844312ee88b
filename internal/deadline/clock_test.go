package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func classifyIn(d time.Duration) Result {
	return Classify(Input{Target: At(now.Add(d)), Now: now})
}

func TestClassify_NoTarget(t *testing.T) {
	got := Classify(Input{Now: now})
	assert.Equal(t, StateNone, got.State)
	assert.Equal(t, Remaining{}, got.Remaining)
	assert.Equal(t, NoneText, got.DisplayText)
}

func TestClassify_InvalidDate(t *testing.T) {
	var got Result
	require.NotPanics(t, func() {
		got = Classify(Input{Target: Parse("not-a-date"), Now: now})
	})
	assert.Equal(t, StateInvalid, got.State)
	assert.Equal(t, Remaining{}, got.Remaining)
}

func TestClassify_Passed(t *testing.T) {
	for _, d := range []time.Duration{-time.Millisecond, 0, -72 * time.Hour} {
		got := classifyIn(d)
		assert.Equal(t, StatePassed, got.State, "diff %s", d)
		assert.Equal(t, Remaining{}, got.Remaining)
		assert.Equal(t, "Deadline has passed", got.DisplayText)
	}
}

func TestClassify_UrgentBoundaryInclusive(t *testing.T) {
	assert.Equal(t, StateUrgent, classifyIn(time.Duration(23.9*float64(time.Hour))).State)
	assert.Equal(t, StateUrgent, classifyIn(24*time.Hour).State)
	assert.Equal(t, StateSoon, classifyIn(24*time.Hour+time.Millisecond).State)
}

func TestClassify_SoonAndNormal(t *testing.T) {
	tests := []struct {
		name string
		diff time.Duration
		want State
	}{
		{"two days", 48 * time.Hour, StateSoon},
		{"three days and change", 3*24*time.Hour + 23*time.Hour, StateSoon},
		{"four days", 4 * 24 * time.Hour, StateNormal},
		{"a month", 30 * 24 * time.Hour, StateNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIn(tt.diff).State)
		})
	}
}

func TestClassify_CustomThreshold(t *testing.T) {
	in := Input{Target: At(now.Add(40 * time.Hour)), Now: now, WarningThresholdHours: 48}
	assert.Equal(t, StateUrgent, Classify(in).State)

	in.WarningThresholdHours = 12
	assert.Equal(t, StateSoon, Classify(in).State)
}

func TestClassify_RemainingBreakdown(t *testing.T) {
	diff := 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second
	got := classifyIn(diff)
	assert.Equal(t, Remaining{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, got.Remaining)
}

func TestBreakdown_Floors(t *testing.T) {
	got := Breakdown(time.Hour - time.Millisecond)
	assert.Equal(t, Remaining{Days: 0, Hours: 0, Minutes: 59, Seconds: 59}, got)
	assert.Equal(t, Remaining{}, Breakdown(-time.Second))
}

func TestClassify_Idempotent(t *testing.T) {
	in := Input{Target: Parse("2025-03-17T08:30:00Z"), Now: now, Mode: ModeFull}
	assert.Equal(t, Classify(in), Classify(in))
}

func TestClassify_DisplayText(t *testing.T) {
	tests := []struct {
		name string
		diff time.Duration
		mode Mode
		want string
	}{
		{"days full", 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second, ModeFull, "2d 03:04:05"},
		{"days compact", 2*24*time.Hour + 3*time.Hour + 4*time.Minute, ModeCompact, "2d 3h"},
		{"hours full", 5*time.Hour + 6*time.Minute + 7*time.Second, ModeFull, "05:06:07"},
		{"hours compact", 5*time.Hour + 6*time.Minute, ModeCompact, "5h remaining"},
		{"minutes full", 42*time.Minute + 9*time.Second, ModeFull, "00:42:09"},
		{"minutes compact", 42*time.Minute + 9*time.Second, ModeCompact, "42m remaining"},
		{"seconds compact", 30 * time.Second, ModeCompact, "0m remaining"},
		{"default mode is compact", 90 * time.Minute, "", "1h remaining"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(Input{Target: At(now.Add(tt.diff)), Now: now, Mode: tt.mode})
			assert.Equal(t, tt.want, got.DisplayText)
		})
	}
}

func TestResult_RenderSwitchesMode(t *testing.T) {
	got := classifyIn(26*time.Hour + 15*time.Minute)
	assert.Equal(t, "1d 2h", got.DisplayText)
	assert.Equal(t, "1d 02:15:00", got.Render(ModeFull))

	passed := classifyIn(-time.Hour)
	assert.Equal(t, PassedText, passed.Render(ModeFull))
}

func TestClassify_MonotoneAsTimeAdvances(t *testing.T) {
	target := At(now.Add(6 * 24 * time.Hour))
	prev := StateNormal.Severity()
	for ref := now; ref.Before(now.Add(7 * 24 * time.Hour)); ref = ref.Add(17 * time.Minute) {
		sev := Classify(Input{Target: target, Now: ref}).State.Severity()
		assert.LessOrEqual(t, sev, prev, "state regressed at %s", ref)
		prev = sev
	}
}
