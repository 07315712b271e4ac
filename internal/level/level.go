// Package level converts XP totals into levels. Skills, characteristics and
// core metrics all share this one curve.
package level

import (
	"math"

	"github.com/claude/levelup/internal/models"
)

// xpPerLevelUnit scales the quadratic level curve.
const xpPerLevelUnit = 100

// LevelFromXP returns floor(sqrt(xp/100)) + 1. Negative XP counts as 0.
func LevelFromXP(xp float64) int {
	if xp <= 0 || math.IsNaN(xp) {
		return 1
	}
	return int(math.Floor(math.Sqrt(xp/xpPerLevelUnit))) + 1
}

// XPForLevel returns the XP at which the given level starts: (level-1)² × 100.
func XPForLevel(lvl int) float64 {
	if lvl <= 1 {
		return 0
	}
	n := float64(lvl - 1)
	return n * n * xpPerLevelUnit
}

// Progress reports the level for xp and how far into that level it is.
// Percent is not clamped.
func Progress(xp float64) models.LevelProgress {
	lvl := LevelFromXP(xp)
	start := XPForLevel(lvl)
	span := XPForLevel(lvl+1) - start

	p := models.LevelProgress{
		Level:     lvl,
		XPInLevel: xp - start,
		LevelSpan: span,
	}
	if span > 0 {
		p.Percent = p.XPInLevel / span * 100
	}
	return p
}
