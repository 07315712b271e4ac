package coremetric

import (
	"math"
	"sort"

	"github.com/claude/levelup/internal/level"
	"github.com/claude/levelup/internal/models"
)

// MaxMetricXP caps metric values on the radar chart. It is a display limit
// only; computed metric XP is never clamped.
const MaxMetricXP = 2000

// ComputeAll derives every core metric from the given skills and
// characteristics. The result always holds all metrics in canonical order,
// whether or not anything contributes to them.
func ComputeAll(skills []models.SkillContribution, chars []models.CharacteristicContribution) []models.ComputedCoreMetric {
	skillMaps := make([]models.Weights, len(skills))
	for i, s := range skills {
		skillMaps[i] = skillWeights(s)
	}

	out := make([]models.ComputedCoreMetric, 0, MetricCount)
	for _, name := range metricOrder {
		m := models.ComputedCoreMetric{Name: name, Contributions: []models.Contribution{}}

		for i, s := range skills {
			w := skillMaps[i][name]
			if w <= 0 {
				continue
			}
			c := contribute(s.XP, w)
			m.XP += c
			m.Contributions = append(m.Contributions, models.Contribution{
				Kind:          models.SourceSkill,
				SourceID:      s.ID,
				SourceName:    s.Name,
				SourceXP:      s.XP,
				Weight:        w,
				ContributedXP: c,
			})
		}

		for _, ch := range chars {
			// A nil map reads as empty.
			w := ch.ContributesTo[name]
			if w <= 0 {
				continue
			}
			c := contribute(ch.XP, w)
			m.XP += c
			m.Contributions = append(m.Contributions, models.Contribution{
				Kind:          models.SourceCharacteristic,
				SourceID:      ch.ID,
				SourceName:    ch.Name,
				SourceXP:      ch.XP,
				Weight:        w,
				ContributedXP: c,
			})
		}

		m.Level = level.LevelFromXP(float64(m.XP))
		out = append(out, m)
	}
	return out
}

// contribute floors xp × weight. Negative or NaN XP contributes nothing.
func contribute(xp, weight float64) int {
	v := xp * weight
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(v))
}

// RadarChartData projects metrics onto radar axes, capping each value at MaxMetricXP.
func RadarChartData(metrics []models.ComputedCoreMetric) []models.RadarPoint {
	out := make([]models.RadarPoint, len(metrics))
	for i, m := range metrics {
		out[i] = models.RadarPoint{Label: string(m.Name), Value: clampedXP(m)}
	}
	return out
}

func clampedXP(m models.ComputedCoreMetric) int {
	if m.XP < 0 {
		return 0
	}
	if m.XP > MaxMetricXP {
		return MaxMetricXP
	}
	return m.XP
}

// SkillContributions lists every metric a skill feeds, heaviest weight first.
// Ties keep canonical metric order.
func SkillContributions(s models.SkillContribution) []models.MetricContribution {
	weights := skillWeights(s)
	var out []models.MetricContribution
	for _, name := range metricOrder {
		w := weights[name]
		if w <= 0 {
			continue
		}
		out = append(out, models.MetricContribution{
			Metric:        name,
			Weight:        w,
			ContributedXP: contribute(s.XP, w),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

// Contributors returns the contributions attached to the named metric, or nil
// if metrics does not contain it.
func Contributors(metrics []models.ComputedCoreMetric, name models.MetricName) []models.Contribution {
	for _, m := range metrics {
		if m.Name == name {
			return m.Contributions
		}
	}
	return nil
}

// Find returns the named metric from a computed set.
func Find(metrics []models.ComputedCoreMetric, name models.MetricName) (models.ComputedCoreMetric, bool) {
	for _, m := range metrics {
		if m.Name == name {
			return m, true
		}
	}
	return models.ComputedCoreMetric{}, false
}
