// Package session scores a single completed workout session.
//
// The score blends relative volume, work density and duration, scaled by rep
// intensity, then adjusted for fatigue, weekly frequency and retroactive edits.
// All functions are pure.
package session

import (
	"math"

	"github.com/claude/levelup/internal/models"
)

const (
	// MinDurationMinutes is the shortest session that earns XP.
	MinDurationMinutes = 20

	// MinXP is the floor for any session that earns XP.
	MinXP = 20
	// MaxXP caps a single session.
	MaxXP = 120

	// DefaultBodyweightKg stands in when bodyweight is unknown.
	DefaultBodyweightKg = 70.0
	// MinBodyweightKg and MaxBodyweightKg bound the bodyweight used for relative volume.
	MinBodyweightKg = 50.0
	MaxBodyweightKg = 120.0

	volumeWeight   = 1.5
	densityWeight  = 0.4
	durationWeight = 0.3

	editPenalty = 0.8
)

// CalculateXP returns the XP awarded for one session. Nil context arguments
// mean the value is absent. Sessions shorter than MinDurationMinutes or with
// no recorded volume earn 0; everything else lands in [MinXP, MaxXP].
func CalculateXP(w models.WorkoutData, f *models.FatigueData, c *models.ConsistencyData, b *models.BodyweightData) int {
	if w.DurationMinutes < MinDurationMinutes {
		return 0
	}
	volume := TotalVolume(w.Sets)
	// Finite loads can still overflow the sum.
	if volume <= 0 || math.IsInf(volume, 0) || math.IsNaN(volume) {
		return 0
	}

	var bw *float64
	if b != nil {
		bw = b.BodyweightKg
	}
	bodyweight := ClampBodyweight(bw)

	duration := float64(w.DurationMinutes)
	relativeVolume := volume / bodyweight
	density := WorkDensity(volume, w.DurationMinutes)

	xp := (math.Sqrt(relativeVolume)*volumeWeight +
		density*densityWeight +
		duration*durationWeight) * SessionIntensity(w.Sets)

	var fatigue float64
	if f != nil {
		fatigue = f.FatigueLevel
	}
	xp *= FatigueModifier(fatigue)

	var sessions int
	if c != nil {
		sessions = c.SessionsThisWeek
	}
	xp *= ConsistencyMultiplier(sessions)

	if w.IsEdited {
		xp *= editPenalty
	}

	return clamp(roundHalfUp(xp), MinXP, MaxXP)
}

// TotalVolume sums weight × reps over all sets. Missing or negative values count as 0.
func TotalVolume(sets []models.ExerciseSet) float64 {
	var total float64
	for _, s := range sets {
		total += s.Load() * float64(s.RepCount())
	}
	return total
}

// ClampBodyweight bounds bodyweight to [50, 120] kg, defaulting to 70 kg
// when it is unknown or not positive.
func ClampBodyweight(kg *float64) float64 {
	if kg == nil || *kg <= 0 || math.IsNaN(*kg) {
		return DefaultBodyweightKg
	}
	return math.Min(math.Max(*kg, MinBodyweightKg), MaxBodyweightKg)
}

// IntensityFactor weights a set by rep range: heavier, lower-rep work scores higher.
func IntensityFactor(reps int) float64 {
	switch {
	case reps <= 5:
		return 1.3
	case reps <= 8:
		return 1.15
	case reps <= 12:
		return 1.0
	default:
		return 0.9
	}
}

// SessionIntensity is the mean IntensityFactor over all sets, or 1.0 with no sets.
func SessionIntensity(sets []models.ExerciseSet) float64 {
	if len(sets) == 0 {
		return 1.0
	}
	var sum float64
	for _, s := range sets {
		sum += IntensityFactor(s.RepCount())
	}
	return sum / float64(len(sets))
}

// WorkDensity is volume per minute, or 0 for a zero-length session.
func WorkDensity(volume float64, durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return volume / float64(durationMinutes)
}

// FatigueModifier reduces XP as reported fatigue rises.
func FatigueModifier(level float64) float64 {
	switch {
	case level < 40:
		return 1.0
	case level < 60:
		return 0.85
	case level < 80:
		return 0.7
	default:
		return 0.55
	}
}

// ConsistencyMultiplier rewards training frequency within the current week.
func ConsistencyMultiplier(sessionsThisWeek int) float64 {
	switch {
	case sessionsThisWeek >= 5:
		return 1.25
	case sessionsThisWeek == 4:
		return 1.2
	case sessionsThisWeek == 3:
		return 1.1
	default:
		return 1.0
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
