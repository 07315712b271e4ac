package coremetric

import (
	"testing"

	"github.com/claude/levelup/internal/models"
)

func metricsWithXP(xp ...int) []models.ComputedCoreMetric {
	out := ComputeAll(nil, nil)
	for i := range out {
		if i < len(xp) {
			out[i].XP = xp[i]
		}
	}
	return out
}

func uniform(v int) []int {
	xp := make([]int, MetricCount)
	for i := range xp {
		xp[i] = v
	}
	return xp
}

// TestBalanceScoreBounds verifies the all-zero and perfectly even extremes.
func TestBalanceScoreBounds(t *testing.T) {
	if got := BalanceScore(ComputeAll(nil, nil)); got != 0 {
		t.Errorf("all zero = %d, want 0", got)
	}
	if got := BalanceScore(metricsWithXP(uniform(750)...)); got != 100 {
		t.Errorf("uniform = %d, want 100", got)
	}
	if got := BalanceScore(nil); got != 0 {
		t.Errorf("no metrics = %d, want 0", got)
	}
}

// TestBalanceScoreUsesClampedValues verifies that XP above the radar cap
// counts as the cap, so metrics all past the cap are balanced.
func TestBalanceScoreUsesClampedValues(t *testing.T) {
	xp := uniform(MaxMetricXP)
	xp[0] = 9000
	if got := BalanceScore(metricsWithXP(xp...)); got != 100 {
		t.Errorf("clamped uniform = %d, want 100", got)
	}
}

// TestBalanceScoreDecreasesWithImbalance verifies the score falls as one
// metric pulls away from the rest.
func TestBalanceScoreDecreasesWithImbalance(t *testing.T) {
	prev := 101
	for _, top := range []int{500, 800, 1200, 1600, 2000} {
		xp := uniform(500)
		xp[0] = top
		got := BalanceScore(metricsWithXP(xp...))
		if got >= prev && top != 500 {
			t.Errorf("top=%d: score %d not below previous %d", top, got, prev)
		}
		if got < 0 || got > 100 {
			t.Errorf("top=%d: score %d out of range", top, got)
		}
		prev = got
	}

	lopsided := make([]int, MetricCount)
	lopsided[3] = 2000
	if got := BalanceScore(metricsWithXP(lopsided...)); got != 20 {
		t.Errorf("single metric = %d, want 20", got)
	}
}
