// Package snapshot loads the skills, characteristics, attendance and workouts
// the engine scores. It is the boundary where user input is validated: areas
// are checked against the known set and weight maps must pass
// coremetric.ValidateWeights.
package snapshot

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/claude/levelup/internal/coremetric"
	"github.com/claude/levelup/internal/models"
)

// Snapshot is a full picture of one user's tracked entities.
type Snapshot struct {
	BodyweightKg    *float64         `yaml:"bodyweight_kg"`
	Skills          []Skill          `yaml:"skills"`
	Characteristics []Characteristic `yaml:"characteristics"`
	Workouts        []Workout        `yaml:"workouts"`
}

// Skill is a tracked skill with its attendance history.
type Skill struct {
	ID            string                    `yaml:"id"`
	Name          string                    `yaml:"name"`
	XP            float64                   `yaml:"xp"`
	Area          *string                   `yaml:"area"`
	ContributesTo map[string]float64        `yaml:"contributes_to"`
	Attendance    []models.AttendanceRecord `yaml:"attendance"`

	weights models.Weights
}

// Characteristic is a tracked characteristic with its attendance history.
type Characteristic struct {
	ID            string                    `yaml:"id"`
	Name          string                    `yaml:"name"`
	XP            float64                   `yaml:"xp"`
	ContributesTo map[string]float64        `yaml:"contributes_to"`
	Attendance    []models.AttendanceRecord `yaml:"attendance"`

	weights models.Weights
}

// Workout is one logged training session.
type Workout struct {
	Date         string  `yaml:"date"`
	Name         string  `yaml:"name"`
	FatigueLevel float64 `yaml:"fatigue_level"`

	models.WorkoutData `yaml:",inline"`
}

// Contribution returns the aggregator view of the skill.
func (s Skill) Contribution() models.SkillContribution {
	return models.SkillContribution{
		ID:            s.ID,
		Name:          s.Name,
		XP:            s.XP,
		Area:          s.Area,
		ContributesTo: s.weights,
	}
}

// Contribution returns the aggregator view of the characteristic.
func (c Characteristic) Contribution() models.CharacteristicContribution {
	return models.CharacteristicContribution{
		ID:            c.ID,
		Name:          c.Name,
		XP:            c.XP,
		ContributesTo: c.weights,
	}
}

// SkillContributions returns the aggregator view of every skill.
func (s *Snapshot) SkillContributions() []models.SkillContribution {
	out := make([]models.SkillContribution, len(s.Skills))
	for i, sk := range s.Skills {
		out[i] = sk.Contribution()
	}
	return out
}

// CharacteristicContributions returns the aggregator view of every characteristic.
func (s *Snapshot) CharacteristicContributions() []models.CharacteristicContribution {
	out := make([]models.CharacteristicContribution, len(s.Characteristics))
	for i, c := range s.Characteristics {
		out[i] = c.Contribution()
	}
	return out
}

// Loader decodes and validates snapshots.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a Loader that reports recoverable problems to log.
func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads a snapshot file. JSON files load too, since YAML is a superset.
func (l *Loader) Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	snap, err := l.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Decode parses a snapshot from r and validates it.
func (l *Loader) Decode(r io.Reader) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := yaml.NewDecoder(r).Decode(snap); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.BodyweightKg != nil && !finite(*snap.BodyweightKg) {
		return nil, fmt.Errorf("bodyweight_kg %v is not a finite number", *snap.BodyweightKg)
	}

	for i := range snap.Skills {
		sk := &snap.Skills[i]
		if sk.ID == "" {
			sk.ID = uuid.NewString()
		}
		if err := checkEntity("skill", sk.Name, sk.XP); err != nil {
			return nil, err
		}
		if sk.Area != nil {
			area := coremetric.NormalizeArea(*sk.Area)
			sk.Area = &area
			if !coremetric.IsKnownArea(area) {
				l.log.Warn("unknown skill area, using fallback contributions",
					"skill", sk.Name, "area", area)
			}
		}
		w, err := parseWeights(sk.ContributesTo)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", sk.Name, err)
		}
		sk.weights = w
		l.checkAttendance("skill", sk.Name, sk.Attendance)
	}

	for i := range snap.Characteristics {
		ch := &snap.Characteristics[i]
		if ch.ID == "" {
			ch.ID = uuid.NewString()
		}
		if err := checkEntity("characteristic", ch.Name, ch.XP); err != nil {
			return nil, err
		}
		w, err := parseWeights(ch.ContributesTo)
		if err != nil {
			return nil, fmt.Errorf("characteristic %q: %w", ch.Name, err)
		}
		ch.weights = w
		l.checkAttendance("characteristic", ch.Name, ch.Attendance)
	}

	for i, w := range snap.Workouts {
		if w.Date != "" {
			if _, err := models.ParseDay(w.Date); err != nil {
				return nil, fmt.Errorf("workout %d: %w", i+1, err)
			}
		}
		if !(w.FatigueLevel >= 0 && w.FatigueLevel <= 100) {
			return nil, fmt.Errorf("workout %d: fatigue_level %v outside 0-100", i+1, w.FatigueLevel)
		}
		if err := checkSets(w.Sets); err != nil {
			return nil, fmt.Errorf("workout %d: %w", i+1, err)
		}
	}

	return snap, nil
}

func checkEntity(kind, name string, xp float64) error {
	if name == "" {
		return fmt.Errorf("%s without a name", kind)
	}
	if !finite(xp) || xp < 0 {
		return fmt.Errorf("%s %q: xp %v must be a non-negative number", kind, name, xp)
	}
	return nil
}

// checkSets rejects non-finite loads. Negative and missing loads are left for
// the scorer, which counts them as 0.
func checkSets(sets []models.ExerciseSet) error {
	for j, s := range sets {
		if s.WeightKg != nil && !finite(*s.WeightKg) {
			return fmt.Errorf("set %d: weight_kg %v is not a finite number", j+1, *s.WeightKg)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseWeights maps raw metric names onto canonical ones and validates the
// result. A nil input stays nil so skills fall back to their area mapping.
func parseWeights(raw map[string]float64) (models.Weights, error) {
	if raw == nil {
		return nil, nil
	}
	w := make(models.Weights, len(raw))
	for k, v := range raw {
		name, ok := coremetric.ParseMetricName(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", coremetric.ErrUnknownMetric, k)
		}
		w[name] += v
	}
	if err := coremetric.ValidateWeights(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (l *Loader) checkAttendance(kind, name string, recs []models.AttendanceRecord) {
	for _, r := range recs {
		if _, err := r.Day(); err != nil {
			l.log.Warn("attendance record has an unparseable date",
				kind, name, "date", r.Date)
		}
		if r.GoalMinutes <= 0 {
			l.log.Warn("attendance record has no positive goal",
				kind, name, "date", r.Date, "goal_minutes", r.GoalMinutes)
		}
	}
}
