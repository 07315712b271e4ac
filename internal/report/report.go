// Package report runs every scoring engine over a snapshot and collects the
// derived values the app would persist and display.
package report

import (
	"log/slog"
	"sort"
	"time"

	"github.com/claude/levelup/internal/consistency"
	"github.com/claude/levelup/internal/coremetric"
	"github.com/claude/levelup/internal/ingest/alpha"
	"github.com/claude/levelup/internal/level"
	"github.com/claude/levelup/internal/models"
	"github.com/claude/levelup/internal/session"
	"github.com/claude/levelup/internal/snapshot"
)

// Workout sources.
const (
	SourceSnapshot = "snapshot"
	SourceAlpha    = "alpha"
)

// Options holds scoring settings that come from configuration.
type Options struct {
	// BodyweightKg is used when the snapshot has none. Nil means unknown.
	BodyweightKg *float64
	DailyBaseXP  float64
	GoalType     models.GoalType
}

// Report is everything derived from one snapshot.
type Report struct {
	Workouts        []WorkoutScore              `json:"workouts"`
	Skills          []EntityProgress            `json:"skills"`
	Characteristics []EntityProgress            `json:"characteristics"`
	Metrics         []models.ComputedCoreMetric `json:"metrics"`
	Radar           []models.RadarPoint         `json:"radar"`
	BalanceScore    int                         `json:"balance_score"`
}

// WorkoutScore is the XP award for one session.
type WorkoutScore struct {
	Name             string            `json:"name,omitempty"`
	Date             string            `json:"date,omitempty"`
	Source           string            `json:"source"`
	DurationMinutes  int               `json:"duration_minutes"`
	SessionsThisWeek int               `json:"sessions_this_week"`
	XP               int               `json:"xp"`
	Intensity        session.Intensity `json:"intensity"`
	Message          string            `json:"message"`
}

// EntityProgress is the level and adherence of one skill or characteristic.
type EntityProgress struct {
	ID            string                      `json:"id"`
	Name          string                      `json:"name"`
	XP            float64                     `json:"xp"`
	Progress      models.LevelProgress        `json:"progress"`
	Consistency   *models.ConsistencyResult   `json:"consistency,omitempty"`
	Multiplier    float64                     `json:"multiplier,omitempty"`
	DailyXP       *int                        `json:"daily_xp,omitempty"`
	Contributions []models.MetricContribution `json:"contributions,omitempty"`
}

// Builder assembles reports.
type Builder struct {
	opts Options
	log  *slog.Logger
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts Options, log *slog.Logger) *Builder {
	return &Builder{opts: opts, log: log}
}

// Build scores every workout, analyzes every attendance history and
// recomputes the core metrics from scratch.
func (b *Builder) Build(snap *snapshot.Snapshot, alphaSessions []models.AlphaSession) *Report {
	bodyweight := snap.BodyweightKg
	if bodyweight == nil {
		bodyweight = b.opts.BodyweightKg
	}

	r := &Report{
		Workouts: b.scoreWorkouts(collectWorkouts(snap, alphaSessions, bodyweight), bodyweight),
	}

	for _, sk := range snap.Skills {
		p := b.progress(sk.ID, sk.Name, sk.XP, sk.Attendance)
		p.Contributions = coremetric.SkillContributions(sk.Contribution())
		r.Skills = append(r.Skills, p)
	}
	for _, ch := range snap.Characteristics {
		r.Characteristics = append(r.Characteristics, b.progress(ch.ID, ch.Name, ch.XP, ch.Attendance))
	}

	r.Metrics = coremetric.ComputeAll(snap.SkillContributions(), snap.CharacteristicContributions())
	r.Radar = coremetric.RadarChartData(r.Metrics)
	r.BalanceScore = coremetric.BalanceScore(r.Metrics)

	b.log.Debug("report built",
		"workouts", len(r.Workouts),
		"skills", len(r.Skills),
		"characteristics", len(r.Characteristics),
		"balance", r.BalanceScore)
	return r
}

func (b *Builder) progress(id, name string, xp float64, attendance []models.AttendanceRecord) EntityProgress {
	p := EntityProgress{
		ID:       id,
		Name:     name,
		XP:       xp,
		Progress: level.Progress(xp),
	}
	if len(attendance) == 0 {
		return p
	}

	res := consistency.Analyze(attendance, b.opts.GoalType)
	p.Consistency = &res
	p.Multiplier = consistency.Multiplier(res.CurrentStreak, res.ConsistencyState)

	if latest, ok := latestRecord(attendance); ok {
		daily := consistency.DailyXP(b.opts.DailyBaseXP, latest.TimeSpentMinutes, latest.GoalMinutes,
			res.CurrentStreak, res.ConsistencyState)
		p.DailyXP = &daily
	}
	return p
}

// latestRecord returns the record with the most recent parseable date.
func latestRecord(recs []models.AttendanceRecord) (models.AttendanceRecord, bool) {
	var best models.AttendanceRecord
	var bestDay time.Time
	found := false
	for _, r := range recs {
		day, err := r.Day()
		if err != nil {
			continue
		}
		if !found || day.After(bestDay) {
			best, bestDay, found = r, day, true
		}
	}
	return best, found
}

// pendingWorkout is a session waiting to be scored.
type pendingWorkout struct {
	name    string
	source  string
	day     time.Time
	dated   bool
	data    models.WorkoutData
	fatigue *models.FatigueData
}

func collectWorkouts(snap *snapshot.Snapshot, alphaSessions []models.AlphaSession, bodyweight *float64) []pendingWorkout {
	var out []pendingWorkout
	for _, w := range snap.Workouts {
		p := pendingWorkout{
			name:    w.Name,
			source:  SourceSnapshot,
			data:    w.WorkoutData,
			fatigue: &models.FatigueData{FatigueLevel: w.FatigueLevel},
		}
		if day, err := models.ParseDay(w.Date); err == nil {
			p.day, p.dated = day, true
		}
		out = append(out, p)
	}
	for _, s := range alphaSessions {
		y, m, d := s.Date.Date()
		out = append(out, pendingWorkout{
			name:   s.Name,
			source: SourceAlpha,
			day:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			dated:  !s.Date.IsZero(),
			data:   alpha.ToWorkout(s, bodyweight),
		})
	}

	// Oldest first; undated sessions keep their order at the end.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].dated != out[j].dated {
			return out[i].dated
		}
		return out[i].day.Before(out[j].day)
	})
	return out
}

func (b *Builder) scoreWorkouts(pending []pendingWorkout, bodyweight *float64) []WorkoutScore {
	bw := &models.BodyweightData{BodyweightKg: bodyweight}
	perWeek := make(map[[2]int]int)

	scores := make([]WorkoutScore, 0, len(pending))
	for _, p := range pending {
		score := WorkoutScore{
			Name:            p.name,
			Source:          p.source,
			DurationMinutes: p.data.DurationMinutes,
		}
		if p.dated {
			year, week := p.day.ISOWeek()
			perWeek[[2]int{year, week}]++
			score.Date = p.day.Format(models.DateLayout)
			score.SessionsThisWeek = perWeek[[2]int{year, week}]
		}

		score.XP = session.CalculateXP(p.data,
			p.fatigue,
			&models.ConsistencyData{SessionsThisWeek: score.SessionsThisWeek},
			bw)
		score.Intensity = session.Classify(score.XP)
		score.Message = score.Intensity.Message()

		if score.XP == 0 {
			b.log.Warn("workout earned no XP",
				"name", p.name, "date", score.Date,
				"duration_minutes", p.data.DurationMinutes,
				"volume_kg", session.TotalVolume(p.data.Sets))
		}
		scores = append(scores, score)
	}
	return scores
}
