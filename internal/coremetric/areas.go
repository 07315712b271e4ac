package coremetric

import (
	"strings"

	"github.com/claude/levelup/internal/models"
)

// Area is a skill category with a default contribution mapping.
type Area string

const (
	AreaFitness     Area = "fitness"
	AreaHealth      Area = "health"
	AreaMind        Area = "mind"
	AreaLearning    Area = "learning"
	AreaProgramming Area = "programming"
	AreaCreative    Area = "creative"
	AreaSocial      Area = "social"
	AreaCareer      Area = "career"
	AreaFinance     Area = "finance"
	AreaLanguage    Area = "language"
)

var areaWeights = map[Area]models.Weights{
	AreaFitness:     {Strength: 0.4, Endurance: 0.3, Flexibility: 0.1, Discipline: 0.2},
	AreaHealth:      {Health: 0.5, Endurance: 0.2, Resilience: 0.2, Discipline: 0.1},
	AreaMind:        {Mindfulness: 0.4, Focus: 0.3, Resilience: 0.3},
	AreaLearning:    {Knowledge: 0.5, Intelligence: 0.3, Focus: 0.2},
	AreaProgramming: {Programming: 0.6, Intelligence: 0.2, Focus: 0.1, Productivity: 0.1},
	AreaCreative:    {Creativity: 0.7, Focus: 0.1, Mindfulness: 0.2},
	AreaSocial:      {Social: 0.5, Communication: 0.4, Leadership: 0.1},
	AreaCareer:      {Productivity: 0.3, Leadership: 0.3, Communication: 0.2, Discipline: 0.2},
	AreaFinance:     {Finance: 0.6, Discipline: 0.2, Knowledge: 0.2},
	AreaLanguage:    {Languages: 0.6, Communication: 0.3, Knowledge: 0.1},
}

// fallbackWeights applies to skills with no area or an unrecognized one.
var fallbackWeights = models.Weights{Discipline: 0.3, Knowledge: 0.3, Productivity: 0.2}

// Areas returns the known areas in a stable order.
func Areas() []Area {
	return []Area{
		AreaFitness, AreaHealth, AreaMind, AreaLearning, AreaProgramming,
		AreaCreative, AreaSocial, AreaCareer, AreaFinance, AreaLanguage,
	}
}

// IsKnownArea reports whether area has its own default mapping.
func IsKnownArea(area string) bool {
	_, ok := areaWeights[Area(area)]
	return ok
}

// NormalizeArea lowercases and trims a user-supplied area so it can be
// checked with IsKnownArea.
func NormalizeArea(area string) string {
	return strings.ToLower(strings.TrimSpace(area))
}

// DefaultContributions returns a copy of the default mapping for area. A nil
// or unknown area gets the fallback mapping.
func DefaultContributions(area *string) models.Weights {
	src := fallbackWeights
	if area != nil {
		if w, ok := areaWeights[Area(*area)]; ok {
			src = w
		}
	}
	out := make(models.Weights, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// skillWeights resolves the mapping used for a skill: explicit weights win,
// otherwise the area default.
func skillWeights(s models.SkillContribution) models.Weights {
	if s.ContributesTo != nil {
		return s.ContributesTo
	}
	if s.Area != nil {
		if w, ok := areaWeights[Area(*s.Area)]; ok {
			return w
		}
	}
	return fallbackWeights
}
