// Package leveling turns simulation activity into experience points and a
// gamified level.
package leveling

import (
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
)

// XP awards and penalties per activity record.
const (
	BaseXP             = 100
	XPPerMessage       = 10
	CompletionBonus    = 500
	InProgressBonus    = 150
	RequirementsBonus  = 50
	MissedDeadlineCost = 200

	// XPPerLevel is the width of every level band.
	XPPerLevel = 1000
)

type LevelResult struct {
	XP              int
	Level           int
	ProgressPercent int
}

// Contribution breaks down what a single record added to the XP total.
type Contribution struct {
	Base       int
	Engagement int
	Bonus      int
	Penalty    int
}

// Total is the signed XP this record adds before the final clamp.
func (c Contribution) Total() int {
	return c.Base + c.Engagement + c.Bonus - c.Penalty
}

// Score computes one record's contribution. A completed record earns the
// completion bonus and is never penalised for its deadline.
func Score(rec domain.ActivityRecord, now time.Time) Contribution {
	c := Contribution{Base: BaseXP}
	if rec.MessageCount > 0 {
		c.Engagement = rec.MessageCount * XPPerMessage
	}

	if rec.Status == domain.StatusCompleted {
		c.Bonus = CompletionBonus
		return c
	}

	if rec.Deadline != nil && rec.Deadline.Before(now) {
		c.Penalty = MissedDeadlineCost
	}
	switch rec.Status {
	case domain.StatusInProgress:
		c.Bonus = InProgressBonus
	case domain.StatusRequirementsSent:
		c.Bonus = RequirementsBonus
	}
	return c
}

// ComputeLevel sums record contributions, clamps the total at zero and
// derives level and progress from it.
func ComputeLevel(records []domain.ActivityRecord, now time.Time) LevelResult {
	xp := 0
	for _, rec := range records {
		xp += Score(rec, now).Total()
	}
	return FromXP(xp)
}

// FromXP derives a LevelResult from a raw XP total.
func FromXP(xp int) LevelResult {
	if xp < 0 {
		xp = 0
	}
	return LevelResult{
		XP:              xp,
		Level:           LevelOf(xp),
		ProgressPercent: ProgressOf(xp),
	}
}

// LevelOf maps XP onto 1000-point bands starting at level 1.
func LevelOf(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// ProgressOf returns floor((xp mod 1000) / 10) capped at 100.
func ProgressOf(xp int) int {
	if xp < 0 {
		xp = 0
	}
	pct := (xp % XPPerLevel) / 10
	if pct > 100 {
		pct = 100
	}
	return pct
}

// XPToNextLevel is how many points remain until the next band.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}
