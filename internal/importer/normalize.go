package importer

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
)

// Messages returns the record's message count. Missing, null, negative
// and non-numeric values count as zero.
func (r Record) Messages() int {
	var metaCount *int
	if r.Meta != nil {
		metaCount = rawInt(r.Meta.TotalMessages)
	}
	n := domain.IntFromPtrWithDefault(0, metaCount, rawInt(r.MessageCount))
	if n < 0 {
		return 0
	}
	return n
}

// DeadlineTarget resolves deadlineTimestamp, falling back to deadline.
func (r Record) DeadlineTarget() deadline.Target {
	for _, raw := range []json.RawMessage{r.DeadlineTimestamp, r.Deadline} {
		if t := rawTarget(raw); t.IsSet() {
			return t
		}
	}
	return deadline.NoTarget()
}

// DisplayTitle prefers title over name.
func (r Record) DisplayTitle() string {
	return domain.CoalesceStr(strings.TrimSpace(r.Title), strings.TrimSpace(r.Name), "Untitled simulation")
}

// Activity normalizes the record for leveling. Unparseable deadlines are
// dropped so they never incur the missed-deadline penalty.
func (r Record) Activity() domain.ActivityRecord {
	var dl *time.Time
	if at, ok := r.DeadlineTarget().Time(); ok {
		dl = &at
	}
	return domain.NewActivityRecord(domain.SimulationStatus(strings.TrimSpace(r.Status)), r.Messages(), dl)
}

// Activities normalizes every record.
func Activities(records []Record) []domain.ActivityRecord {
	out := make([]domain.ActivityRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.Activity())
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// maxMessageCount caps imported counts so engagement XP cannot overflow.
const maxMessageCount = 1_000_000

func rawInt(raw json.RawMessage) *int {
	if isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Floor(math.Max(-maxMessageCount, math.Min(f, maxMessageCount))))
	return &n
}

func rawTarget(raw json.RawMessage) deadline.Target {
	if isNull(raw) {
		return deadline.NoTarget()
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return deadline.FromMillisFloat(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return deadline.Parse(s)
	}
	return deadline.Invalid()
}
