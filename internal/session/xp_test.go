package session

import (
	"math"
	"testing"

	"github.com/claude/levelup/internal/models"
)

// fixtureWorkout is the regression session: 10×100 kg and 8×110 kg over 45 minutes.
func fixtureWorkout() models.WorkoutData {
	return models.WorkoutData{
		Sets: []models.ExerciseSet{
			{Reps: 10, WeightKg: models.Float(100)},
			{Reps: 8, WeightKg: models.Float(110)},
		},
		DurationMinutes: 45,
	}
}

// TestCalculateXPFixture pins the score for the reference session so formula
// changes are caught.
func TestCalculateXPFixture(t *testing.T) {
	if got := CalculateXP(fixtureWorkout(), nil, nil, nil); got != 41 {
		t.Errorf("CalculateXP(fixture) = %d, want 41", got)
	}
}

// TestCalculateXPTooShort verifies that sessions under 20 minutes earn nothing.
func TestCalculateXPTooShort(t *testing.T) {
	w := fixtureWorkout()
	w.DurationMinutes = 19
	if got := CalculateXP(w, nil, nil, nil); got != 0 {
		t.Errorf("CalculateXP(19 min) = %d, want 0", got)
	}
}

// TestCalculateXPNoVolume verifies that sessions without load earn nothing,
// including sets with missing or negative weights.
func TestCalculateXPNoVolume(t *testing.T) {
	cases := []struct {
		name string
		sets []models.ExerciseSet
	}{
		{"no sets", nil},
		{"missing weight", []models.ExerciseSet{{Reps: 10}}},
		{"zero weight", []models.ExerciseSet{{Reps: 10, WeightKg: models.Float(0)}}},
		{"negative weight", []models.ExerciseSet{{Reps: 10, WeightKg: models.Float(-40)}}},
		{"negative reps", []models.ExerciseSet{{Reps: -5, WeightKg: models.Float(100)}}},
		{"NaN weight", []models.ExerciseSet{{Reps: 10, WeightKg: models.Float(math.NaN())}}},
		{"infinite weight", []models.ExerciseSet{{Reps: 10, WeightKg: models.Float(math.Inf(1))}}},
		{"overflowing volume", []models.ExerciseSet{
			{Reps: 10, WeightKg: models.Float(math.MaxFloat64)},
			{Reps: 10, WeightKg: models.Float(math.MaxFloat64)},
		}},
	}
	for _, tc := range cases {
		w := models.WorkoutData{Sets: tc.sets, DurationMinutes: 60}
		if got := CalculateXP(w, nil, nil, nil); got != 0 {
			t.Errorf("%s: CalculateXP = %d, want 0", tc.name, got)
		}
	}
}

// TestCalculateXPBounds verifies the [20, 120] clamp at both ends.
func TestCalculateXPBounds(t *testing.T) {
	light := models.WorkoutData{
		Sets:            []models.ExerciseSet{{Reps: 10, WeightKg: models.Float(20)}},
		DurationMinutes: 20,
	}
	if got := CalculateXP(light, nil, nil, nil); got != MinXP {
		t.Errorf("light session = %d, want %d", got, MinXP)
	}

	var heavySets []models.ExerciseSet
	for i := 0; i < 10; i++ {
		heavySets = append(heavySets, models.ExerciseSet{Reps: 3, WeightKg: models.Float(200)})
	}
	heavy := models.WorkoutData{Sets: heavySets, DurationMinutes: 30}
	if got := CalculateXP(heavy, nil, nil, nil); got != MaxXP {
		t.Errorf("heavy session = %d, want %d", got, MaxXP)
	}
}

// TestFatigueLowersXP verifies that more fatigue never raises the score and
// that going from fresh to exhausted strictly lowers it.
func TestFatigueLowersXP(t *testing.T) {
	w := fixtureWorkout()
	prev := CalculateXP(w, &models.FatigueData{FatigueLevel: 0}, nil, nil)
	first := prev
	for _, level := range []float64{20, 40, 60, 80, 85} {
		got := CalculateXP(w, &models.FatigueData{FatigueLevel: level}, nil, nil)
		if got > prev {
			t.Errorf("fatigue %v: xp %d > previous %d", level, got, prev)
		}
		prev = got
	}
	if prev >= first {
		t.Errorf("fatigue 85 xp %d not below fatigue 0 xp %d", prev, first)
	}
}

// TestFrequencyRaisesXP verifies that more sessions this week never lower the
// score and that going from 1 to 5 strictly raises it.
func TestFrequencyRaisesXP(t *testing.T) {
	w := fixtureWorkout()
	prev := CalculateXP(w, nil, &models.ConsistencyData{SessionsThisWeek: 1}, nil)
	first := prev
	for n := 2; n <= 5; n++ {
		got := CalculateXP(w, nil, &models.ConsistencyData{SessionsThisWeek: n}, nil)
		if got < prev {
			t.Errorf("%d sessions: xp %d < previous %d", n, got, prev)
		}
		prev = got
	}
	if prev <= first {
		t.Errorf("5 sessions xp %d not above 1 session xp %d", prev, first)
	}
	if prev != 51 {
		t.Errorf("5 sessions xp = %d, want 51", prev)
	}
}

// TestEditPenalty verifies that edited sessions score strictly lower.
func TestEditPenalty(t *testing.T) {
	w := fixtureWorkout()
	clean := CalculateXP(w, nil, nil, nil)
	w.IsEdited = true
	edited := CalculateXP(w, nil, nil, nil)
	if edited >= clean {
		t.Errorf("edited xp %d not below clean xp %d", edited, clean)
	}
	if edited != 33 {
		t.Errorf("edited xp = %d, want 33", edited)
	}
}

// TestDeterministic verifies identical inputs always give identical output.
func TestDeterministic(t *testing.T) {
	w := fixtureWorkout()
	f := &models.FatigueData{FatigueLevel: 45}
	c := &models.ConsistencyData{SessionsThisWeek: 3}
	b := &models.BodyweightData{BodyweightKg: models.Float(82)}
	want := CalculateXP(w, f, c, b)
	for i := 0; i < 10; i++ {
		if got := CalculateXP(w, f, c, b); got != want {
			t.Fatalf("run %d: %d != %d", i, got, want)
		}
	}
}

// TestIntensityFactor checks the rep buckets at their edges.
func TestIntensityFactor(t *testing.T) {
	cases := []struct {
		reps int
		want float64
	}{
		{0, 1.3},
		{5, 1.3},
		{6, 1.15},
		{8, 1.15},
		{9, 1.0},
		{12, 1.0},
		{13, 0.9},
		{20, 0.9},
	}
	for _, tc := range cases {
		if got := IntensityFactor(tc.reps); got != tc.want {
			t.Errorf("IntensityFactor(%d) = %v, want %v", tc.reps, got, tc.want)
		}
	}
}

// TestSessionIntensityEmpty verifies the neutral factor for a session with no sets.
func TestSessionIntensityEmpty(t *testing.T) {
	if got := SessionIntensity(nil); got != 1.0 {
		t.Errorf("SessionIntensity(nil) = %v, want 1.0", got)
	}
}

// TestClampBodyweight verifies defaulting and clamping of implausible bodyweights.
func TestClampBodyweight(t *testing.T) {
	cases := []struct {
		name string
		in   *float64
		want float64
	}{
		{"absent", nil, 70},
		{"zero", models.Float(0), 70},
		{"negative", models.Float(-3), 70},
		{"too light", models.Float(30), 50},
		{"in range", models.Float(82.5), 82.5},
		{"too heavy", models.Float(180), 120},
	}
	for _, tc := range cases {
		if got := ClampBodyweight(tc.in); got != tc.want {
			t.Errorf("%s: ClampBodyweight = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestModifiers checks the fatigue and frequency tables at their thresholds.
func TestModifiers(t *testing.T) {
	fatigue := map[float64]float64{0: 1.0, 39.9: 1.0, 40: 0.85, 59: 0.85, 60: 0.7, 79: 0.7, 80: 0.55, 100: 0.55}
	for level, want := range fatigue {
		if got := FatigueModifier(level); got != want {
			t.Errorf("FatigueModifier(%v) = %v, want %v", level, got, want)
		}
	}
	freq := map[int]float64{0: 1.0, 2: 1.0, 3: 1.1, 4: 1.2, 5: 1.25, 9: 1.25}
	for n, want := range freq {
		if got := ConsistencyMultiplier(n); got != want {
			t.Errorf("ConsistencyMultiplier(%d) = %v, want %v", n, got, want)
		}
	}
}

// TestWorkDensityZeroDuration verifies density is 0 rather than infinite.
func TestWorkDensityZeroDuration(t *testing.T) {
	if got := WorkDensity(1000, 0); got != 0 {
		t.Errorf("WorkDensity(1000, 0) = %v, want 0", got)
	}
}

// TestClassify checks the category thresholds.
func TestClassify(t *testing.T) {
	cases := []struct {
		xp   int
		want Intensity
	}{
		{120, IntensityVeryIntense},
		{100, IntensityVeryIntense},
		{99, IntensityHeavy},
		{70, IntensityHeavy},
		{69, IntensityNormal},
		{45, IntensityNormal},
		{44, IntensityLight},
		{0, IntensityLight},
	}
	for _, tc := range cases {
		if got := Classify(tc.xp); got != tc.want {
			t.Errorf("Classify(%d) = %q, want %q", tc.xp, got, tc.want)
		}
		if tc.want.Message() == "" {
			t.Errorf("%q has empty message", tc.want)
		}
	}
}
