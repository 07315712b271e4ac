package coremetric

import (
	"math"

	"github.com/claude/levelup/internal/models"
)

// BalanceScore rates how evenly XP is spread across metrics, from 0 to 100.
// It uses the coefficient of variation of the radar-clamped values: equal
// metrics score 100, and the score falls as the spread widens. All-zero
// metrics score 0.
func BalanceScore(metrics []models.ComputedCoreMetric) int {
	if len(metrics) == 0 {
		return 0
	}

	values := make([]float64, len(metrics))
	var sum float64
	for i, m := range metrics {
		values[i] = float64(clampedXP(m))
		sum += values[i]
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	cv := math.Sqrt(variance) / mean

	return int(math.Round(100 / (1 + cv)))
}
