package level

import (
	"math"
	"testing"
)

// TestLevelFromXP checks the curve at and around level boundaries.
func TestLevelFromXP(t *testing.T) {
	cases := []struct {
		xp   float64
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899.99, 3},
		{900, 4},
		{10000, 11},
	}
	for _, tc := range cases {
		if got := LevelFromXP(tc.xp); got != tc.want {
			t.Errorf("LevelFromXP(%v) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

// TestXPForLevel verifies the inverse curve, including out-of-range levels.
func TestXPForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 100},
		{3, 400},
		{5, 1600},
	}
	for _, tc := range cases {
		if got := XPForLevel(tc.level); got != tc.want {
			t.Errorf("XPForLevel(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

// TestRoundTrip verifies that XPForLevel(LevelFromXP(x)) never decreases as x
// grows and that every level boundary maps back onto itself.
func TestRoundTrip(t *testing.T) {
	prev := -1.0
	for x := 0.0; x <= 5000; x += 7 {
		got := XPForLevel(LevelFromXP(x))
		if got < prev {
			t.Fatalf("round trip decreased at xp=%v: %v < %v", x, got, prev)
		}
		if got > x {
			t.Fatalf("level start %v is above xp %v", got, x)
		}
		prev = got
	}
	for lvl := 1; lvl <= 50; lvl++ {
		boundary := XPForLevel(lvl)
		if got := LevelFromXP(boundary); got != lvl {
			t.Errorf("LevelFromXP(XPForLevel(%d)) = %d", lvl, got)
		}
	}
}

// TestProgress verifies the within-level breakdown.
func TestProgress(t *testing.T) {
	p := Progress(250)
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.XPInLevel != 150 {
		t.Errorf("xp in level = %v, want 150", p.XPInLevel)
	}
	if p.LevelSpan != 300 {
		t.Errorf("level span = %v, want 300", p.LevelSpan)
	}
	if math.Abs(p.Percent-50) > 1e-9 {
		t.Errorf("percent = %v, want 50", p.Percent)
	}
}

// TestProgressAtZero verifies that a fresh entity sits at 0% of level 1.
func TestProgressAtZero(t *testing.T) {
	p := Progress(0)
	if p.Level != 1 || p.XPInLevel != 0 || p.LevelSpan != 100 || p.Percent != 0 {
		t.Errorf("Progress(0) = %+v", p)
	}
}
