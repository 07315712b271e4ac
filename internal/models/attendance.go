package models

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted for attendance records, tried in order.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

// GoalType selects the period a streak is counted in.
type GoalType string

const (
	GoalDaily  GoalType = "daily"
	GoalWeekly GoalType = "weekly"
)

// ConsistencyState summarizes recent goal adherence.
type ConsistencyState string

const (
	StateConsistent ConsistencyState = "consistent"
	StatePartial    ConsistencyState = "partial"
	StateBroken     ConsistencyState = "broken"
	StateNeutral    ConsistencyState = "neutral"
)

// AttendanceRecord is the time spent on one entity on one date.
type AttendanceRecord struct {
	Date             string  `json:"date" yaml:"date"`
	TimeSpentMinutes float64 `json:"time_spent_minutes" yaml:"time_spent_minutes"`
	GoalMinutes      float64 `json:"goal_minutes" yaml:"goal_minutes"`
}

// GoalMet reports whether the time spent reached the goal. No tolerance is applied.
func (r AttendanceRecord) GoalMet() bool {
	return r.TimeSpentMinutes >= r.GoalMinutes
}

// Day parses the record's date and truncates it to a UTC calendar day.
func (r AttendanceRecord) Day() (time.Time, error) {
	return ParseDay(r.Date)
}

// ParseDay parses "2006-01-02" or an RFC 3339 timestamp into a UTC calendar day.
// Timestamps keep the calendar date of their own offset.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, DateTimeLayout} {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// ConsistencyResult is the streak and state derived from a set of attendance records.
type ConsistencyResult struct {
	CurrentStreak    int              `json:"current_streak"`
	BestStreak       int              `json:"best_streak"`
	ConsistencyState ConsistencyState `json:"consistency_state"`
}
