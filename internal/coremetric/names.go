// Package coremetric aggregates skill and characteristic XP into the fixed
// set of core metrics that drive the radar chart.
//
// Metric XP is never stored. It is recomputed from scratch from the current
// skills and characteristics on every call, so removing a source removes its
// XP everywhere.
package coremetric

import (
	"strings"

	"github.com/claude/levelup/internal/models"
)

// Core metric names.
const (
	Strength      models.MetricName = "Strength"
	Endurance     models.MetricName = "Endurance"
	Flexibility   models.MetricName = "Flexibility"
	Health        models.MetricName = "Health"
	Discipline    models.MetricName = "Discipline"
	Focus         models.MetricName = "Focus"
	Resilience    models.MetricName = "Resilience"
	Mindfulness   models.MetricName = "Mindfulness"
	Intelligence  models.MetricName = "Intelligence"
	Knowledge     models.MetricName = "Knowledge"
	Creativity    models.MetricName = "Creativity"
	Programming   models.MetricName = "Programming"
	Communication models.MetricName = "Communication"
	Leadership    models.MetricName = "Leadership"
	Social        models.MetricName = "Social"
	Productivity  models.MetricName = "Productivity"
	Finance       models.MetricName = "Finance"
	Languages     models.MetricName = "Languages"
)

// metricOrder is the canonical order metrics are reported in.
var metricOrder = [...]models.MetricName{
	Strength, Endurance, Flexibility, Health,
	Discipline, Focus, Resilience, Mindfulness,
	Intelligence, Knowledge, Creativity, Programming,
	Communication, Leadership, Social, Productivity,
	Finance, Languages,
}

// MetricCount is the number of core metrics.
const MetricCount = len(metricOrder)

// Metrics returns all metric names in canonical order.
func Metrics() []models.MetricName {
	out := make([]models.MetricName, MetricCount)
	copy(out, metricOrder[:])
	return out
}

// IsKnownMetric reports whether name is one of the core metrics.
func IsKnownMetric(name models.MetricName) bool {
	for _, m := range metricOrder {
		if m == name {
			return true
		}
	}
	return false
}

// ParseMetricName matches s against the metric names case-insensitively.
func ParseMetricName(s string) (models.MetricName, bool) {
	s = strings.TrimSpace(s)
	for _, m := range metricOrder {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return models.MetricName(s), false
}
