// Package consistency derives streaks and adherence state from attendance
// records, and scales daily XP by them.
package consistency

import (
	"math"
	"sort"
	"time"

	"github.com/claude/levelup/internal/models"
)

// RecentWindow is how many of the most recent records decide the state, and
// how deep into the history the current streak may still be reset.
const RecentWindow = 7

const (
	streakBonusPerDay = 0.05
	maxStreakBonus    = 2.0
	partialMultiplier = 0.8
	brokenMultiplier  = 0.5
)

type entry struct {
	day   time.Time
	dated bool
	met   bool
}

// Analyze computes the current and best streak and the consistency state.
// Records may arrive in any order. Records with unparseable dates sort last
// and never chain with a neighbour.
func Analyze(records []models.AttendanceRecord, goal models.GoalType) models.ConsistencyResult {
	if len(records) == 0 {
		return models.ConsistencyResult{ConsistencyState: models.StateNeutral}
	}

	entries := sortedEntries(records)
	period := periodDays(goal)

	var run, current, best int
	frozen := false
	for i, e := range entries {
		prevRun := run
		switch {
		case !e.met:
			run = 0
		case i > 0 && entries[i-1].met && consecutive(entries[i-1], e, period):
			run++
		default:
			run = 1
		}
		if run > best {
			best = run
		}

		if i < RecentWindow {
			current = run
			continue
		}
		// Past the recent window the current streak can only keep extending.
		if frozen {
			continue
		}
		if prevRun > 0 && run == prevRun+1 {
			current = run
		} else {
			frozen = true
		}
	}

	return models.ConsistencyResult{
		CurrentStreak:    current,
		BestStreak:       best,
		ConsistencyState: classify(entries, current),
	}
}

func classify(entries []entry, current int) models.ConsistencyState {
	recent := entries
	if len(recent) > RecentWindow {
		recent = recent[:RecentWindow]
	}
	if len(recent) == 0 {
		return models.StateNeutral
	}

	met := 0
	for _, e := range recent {
		if e.met {
			met++
		}
	}
	switch {
	case met == len(recent) && current > 0:
		return models.StateConsistent
	case met*2 >= len(recent):
		return models.StatePartial
	default:
		return models.StateBroken
	}
}

// sortedEntries orders records most recent first. Equal dates keep input order.
func sortedEntries(records []models.AttendanceRecord) []entry {
	entries := make([]entry, len(records))
	for i, r := range records {
		day, err := r.Day()
		entries[i] = entry{day: day, dated: err == nil, met: r.GoalMet()}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.dated != b.dated {
			return a.dated
		}
		return a.day.After(b.day)
	})
	return entries
}

func periodDays(goal models.GoalType) int {
	if goal == models.GoalWeekly {
		return 7
	}
	return 1
}

// consecutive reports whether older follows newer by exactly one period.
func consecutive(newer, older entry, period int) bool {
	if !newer.dated || !older.dated {
		return false
	}
	days := int(math.Round(newer.day.Sub(older.day).Hours() / 24))
	return days == period
}

// Multiplier scales XP by adherence. Consistent streaks earn a progressive
// bonus capped at 2x.
func Multiplier(streak int, state models.ConsistencyState) float64 {
	switch state {
	case models.StateConsistent:
		return math.Min(1.0+float64(streak)*streakBonusPerDay, maxStreakBonus)
	case models.StatePartial:
		return partialMultiplier
	case models.StateBroken:
		return brokenMultiplier
	default:
		return 1.0
	}
}

// DailyXP awards floor(baseXP × completion × multiplier), where completion is
// timeSpent/goalMinutes capped at 1. Partial time earns partial credit and the
// result is never negative.
func DailyXP(baseXP, timeSpent, goalMinutes float64, streak int, state models.ConsistencyState) int {
	xp := baseXP * CompletionRatio(timeSpent, goalMinutes) * Multiplier(streak, state)
	if xp <= 0 || math.IsNaN(xp) {
		return 0
	}
	return int(math.Floor(xp))
}

// CompletionRatio returns timeSpent/goalMinutes in [0, 1]. A non-positive goal
// is always complete.
func CompletionRatio(timeSpent, goalMinutes float64) float64 {
	if goalMinutes <= 0 {
		return 1.0
	}
	if timeSpent <= 0 {
		return 0
	}
	return math.Min(timeSpent/goalMinutes, 1.0)
}
