package alpha

import (
	"strings"
	"testing"

	"github.com/claude/levelup/internal/models"
	"github.com/claude/levelup/internal/session"
)

func parseSample(t *testing.T) []models.AlphaSession {
	t.Helper()
	sessions, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return sessions
}

// TestToWorkoutDropsWarmups verifies only working sets reach the scorer.
func TestToWorkoutDropsWarmups(t *testing.T) {
	sessions := parseSample(t)
	w := ToWorkout(sessions[1], nil)
	if len(w.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(w.Sets))
	}
	if w.DurationMinutes != 72 {
		t.Errorf("duration = %d, want 72", w.DurationMinutes)
	}
	if got := *w.Sets[0].WeightKg; got != 102.5 {
		t.Errorf("first set weight = %v, want 102.5", got)
	}
	if got := WorkingSetCount(sessions[0]); got != 17 {
		t.Errorf("working sets = %d, want 17", got)
	}
}

// TestToWorkoutBodyweightPlus verifies bodyweight is added to +N sets only
// when it is known.
func TestToWorkoutBodyweightPlus(t *testing.T) {
	legs := parseSample(t)[0]

	// Working sets 5-7 are the weighted hyperextensions (+35 kg).
	without := ToWorkout(legs, nil)
	if got := *without.Sets[5].WeightKg; got != 35 {
		t.Errorf("without bodyweight = %v, want 35", got)
	}

	with := ToWorkout(legs, models.Float(80))
	if got := *with.Sets[5].WeightKg; got != 115 {
		t.Errorf("with bodyweight = %v, want 115", got)
	}
	if got := *with.Sets[0].WeightKg; got != 115 {
		t.Errorf("hack squat = %v, want 115 unchanged", got)
	}
	if session.TotalVolume(with.Sets) <= session.TotalVolume(without.Sets) {
		t.Error("adding bodyweight should raise volume")
	}
}

// TestToWorkoutScores verifies a converted session scores within bounds.
func TestToWorkoutScores(t *testing.T) {
	for _, s := range parseSample(t) {
		xp := session.CalculateXP(ToWorkout(s, models.Float(80)), nil, nil, nil)
		if xp < session.MinXP || xp > session.MaxXP {
			t.Errorf("%s: xp %d out of bounds", s.Name, xp)
		}
	}
}

// TestSummarize verifies the import counts for the sample export.
func TestSummarize(t *testing.T) {
	r := Summarize(parseSample(t))
	if r.SessionsReceived != 2 || r.SessionsScored != 2 || r.SessionsSkipped != 0 {
		t.Errorf("sessions = %d/%d/%d, want 2/2/0", r.SessionsReceived, r.SessionsScored, r.SessionsSkipped)
	}
	// Legs: 17 working + 5 warmups; Push: 3 working + 3 warmups.
	if r.SetsReceived != 28 {
		t.Errorf("sets = %d, want 28", r.SetsReceived)
	}
	if r.WarmupsDropped != 8 {
		t.Errorf("warmups = %d, want 8", r.WarmupsDropped)
	}
	if r.Message != "" {
		t.Errorf("message = %q, want empty", r.Message)
	}
}
