package coremetric

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/claude/levelup/internal/models"
)

// WeightSumTolerance is the largest weight total accepted by ValidateWeights.
// The slack above 1 absorbs floating-point error in user-entered fractions.
const WeightSumTolerance = 1.0001

var (
	ErrUnknownMetric     = errors.New("unknown core metric")
	ErrWeightOutOfRange  = errors.New("contribution weight out of range")
	ErrWeightSumExceeded = errors.New("contribution weights sum above 1")
)

// ValidateWeights checks a user-supplied mapping: every key must be a core
// metric, every weight must be in [0, 1], and the total must not exceed
// WeightSumTolerance. The aggregator itself never calls this.
func ValidateWeights(w models.Weights) error {
	var sum float64
	for _, name := range sortedKeys(w) {
		v := w[name]
		if !IsKnownMetric(name) {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, name)
		}
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s=%v", ErrWeightOutOfRange, name, v)
		}
		sum += v
	}
	if sum > WeightSumTolerance {
		return fmt.Errorf("%w: total %.4f", ErrWeightSumExceeded, sum)
	}
	return nil
}

// NormalizeWeights rescales the positive weights so they sum to 1. Non-positive
// entries are dropped. A mapping with no positive weight normalizes to empty.
func NormalizeWeights(w models.Weights) models.Weights {
	var sum float64
	for _, v := range w {
		if v > 0 {
			sum += v
		}
	}
	out := make(models.Weights, len(w))
	if sum <= 0 {
		return out
	}
	for k, v := range w {
		if v > 0 {
			out[k] = v / sum
		}
	}
	return out
}

// WeightSum returns the total of all weights in w.
func WeightSum(w models.Weights) float64 {
	var sum float64
	for _, name := range sortedKeys(w) {
		sum += w[name]
	}
	return sum
}

func sortedKeys(w models.Weights) []models.MetricName {
	keys := make([]models.MetricName, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
