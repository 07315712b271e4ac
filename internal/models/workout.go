package models

import "math"

// ExerciseSet is one logged set. A nil WeightKg means no load was recorded.
type ExerciseSet struct {
	Reps     int      `json:"reps" yaml:"reps"`
	WeightKg *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
}

// Load returns the set's weight, treating missing, negative or non-finite
// values as 0.
func (s ExerciseSet) Load() float64 {
	if s.WeightKg == nil || !(*s.WeightKg >= 0) || math.IsInf(*s.WeightKg, 1) {
		return 0
	}
	return *s.WeightKg
}

// RepCount returns the set's reps, treating negative values as 0.
func (s ExerciseSet) RepCount() int {
	if s.Reps < 0 {
		return 0
	}
	return s.Reps
}

// WorkoutData holds the loggable facts of one completed session at scoring time.
type WorkoutData struct {
	Sets            []ExerciseSet `json:"sets" yaml:"sets"`
	DurationMinutes int           `json:"duration_minutes" yaml:"duration_minutes"`
	IsEdited        bool          `json:"is_edited" yaml:"is_edited"`
}

// FatigueData is the user's self-reported fatigue on a 0-100 scale.
type FatigueData struct {
	FatigueLevel float64 `json:"fatigue_level"`
}

// ConsistencyData is the weekly training frequency at scoring time.
type ConsistencyData struct {
	SessionsThisWeek int `json:"sessions_this_week"`
}

// BodyweightData carries the athlete's bodyweight. A nil BodyweightKg means unknown.
type BodyweightData struct {
	BodyweightKg *float64 `json:"bodyweight_kg,omitempty"`
}

// Float returns a pointer to v, for building optional fields.
func Float(v float64) *float64 {
	return &v
}
