package alpha

import (
	"github.com/claude/levelup/internal/ingest"
	"github.com/claude/levelup/internal/models"
)

// ToWorkout converts a parsed session into scoring input. Warmup sets are
// left out. Bodyweight-plus sets count the athlete's bodyweight plus the added
// load when bodyweightKg is known, and only the added load otherwise.
func ToWorkout(s models.AlphaSession, bodyweightKg *float64) models.WorkoutData {
	w := models.WorkoutData{DurationMinutes: s.DurationMinutes}
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.IsWarmup {
				continue
			}
			load := set.WeightKg
			if set.IsBodyweightPlus && bodyweightKg != nil && *bodyweightKg > 0 {
				load += *bodyweightKg
			}
			w.Sets = append(w.Sets, models.ExerciseSet{
				Reps:     set.Reps,
				WeightKg: models.Float(load),
			})
		}
	}
	return w
}

// WorkingSetCount returns the number of non-warmup sets in a session.
func WorkingSetCount(s models.AlphaSession) int {
	n := 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if !set.IsWarmup {
				n++
			}
		}
	}
	return n
}

// Summarize counts what an export contained. Sessions without a usable
// duration are counted as skipped, since they cannot earn XP.
func Summarize(sessions []models.AlphaSession) *ingest.Result {
	r := &ingest.Result{SessionsReceived: len(sessions)}
	for _, s := range sessions {
		if s.DurationMinutes > 0 {
			r.SessionsScored++
		} else {
			r.SessionsSkipped++
		}
		for _, ex := range s.Exercises {
			r.SetsReceived += len(ex.Sets)
			for _, set := range ex.Sets {
				if set.IsWarmup {
					r.WarmupsDropped++
				}
			}
		}
	}
	if r.SessionsSkipped > 0 {
		r.Message = "some sessions had no parseable duration"
	}
	return r
}
