package models

import "time"

// AlphaSession is a workout session parsed from an Alpha Progression export.
type AlphaSession struct {
	Name            string
	Date            time.Time
	Duration        string
	DurationMinutes int
	Exercises       []AlphaExercise
}

// AlphaExercise is a single exercise within a session.
type AlphaExercise struct {
	Name string
	Sets []AlphaSet
}

// AlphaSet is a single set, working or warmup. For bodyweight-plus sets
// WeightKg is the added load only.
type AlphaSet struct {
	WeightKg         float64
	IsBodyweightPlus bool
	Reps             int
	IsWarmup         bool
}
