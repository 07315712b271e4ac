package models

// MetricName is one of the fixed core metric names.
type MetricName string

// Weights maps metric names to the fraction (0-1) of a source's XP credited to each.
type Weights map[MetricName]float64

// SourceKind tells skills and characteristics apart in contribution traces.
type SourceKind string

const (
	SourceSkill          SourceKind = "skill"
	SourceCharacteristic SourceKind = "characteristic"
)

// SkillContribution is the part of a skill the metric aggregator reads.
// A nil ContributesTo falls back to the default mapping for Area.
type SkillContribution struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	XP            float64 `json:"xp"`
	Area          *string `json:"area"`
	ContributesTo Weights `json:"contributes_to,omitempty"`
}

// CharacteristicContribution is the part of a characteristic the metric
// aggregator reads. A nil ContributesTo is treated as empty.
type CharacteristicContribution struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	XP            float64 `json:"xp"`
	ContributesTo Weights `json:"contributes_to,omitempty"`
}

// Contribution traces how much XP one source gave one metric.
type Contribution struct {
	Kind          SourceKind `json:"kind"`
	SourceID      string     `json:"source_id"`
	SourceName    string     `json:"source_name"`
	SourceXP      float64    `json:"source_xp"`
	Weight        float64    `json:"weight"`
	ContributedXP int        `json:"contributed_xp"`
}

// ComputedCoreMetric is a core metric with its XP derived from its contributors.
type ComputedCoreMetric struct {
	Name          MetricName     `json:"name"`
	XP            int            `json:"xp"`
	Level         int            `json:"level"`
	Contributions []Contribution `json:"contributions"`
}

// MetricContribution is one metric a single skill feeds.
type MetricContribution struct {
	Metric        MetricName `json:"metric"`
	Weight        float64    `json:"weight"`
	ContributedXP int        `json:"contributed_xp"`
}

// RadarPoint is one axis of the radar chart.
type RadarPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// LevelProgress describes where an XP total sits within its level.
type LevelProgress struct {
	Level     int     `json:"level"`
	XPInLevel float64 `json:"xp_in_level"`
	LevelSpan float64 `json:"level_span"`
	Percent   float64 `json:"percent"`
}
