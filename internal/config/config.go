package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Athlete AthleteConfig `yaml:"athlete"`
	Scoring ScoringConfig `yaml:"scoring"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

type AthleteConfig struct {
	// BodyweightKg is used when the snapshot does not carry one. 0 means unknown.
	BodyweightKg float64 `yaml:"bodyweight_kg"`
}

type ScoringConfig struct {
	DailyBaseXP float64 `yaml:"daily_base_xp"`
	GoalType    string  `yaml:"goal_type"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{DailyBaseXP: 50, GoalType: "daily"},
		Output:  OutputConfig{Format: "json"},
		Log:     LogConfig{Level: "info"},
	}
}

// SlogLevel maps the configured level name onto a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides:
//
//	LEVELUP_BODYWEIGHT_KG, LEVELUP_DAILY_BASE_XP, LEVELUP_GOAL_TYPE,
//	LEVELUP_OUTPUT_FORMAT, LEVELUP_LOG_LEVEL
//
// An empty path skips the file and only applies defaults and env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LEVELUP_BODYWEIGHT_KG"); v != "" {
		if kg, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Athlete.BodyweightKg = kg
		}
	}
	if v := os.Getenv("LEVELUP_DAILY_BASE_XP"); v != "" {
		if xp, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.DailyBaseXP = xp
		}
	}
	if v := os.Getenv("LEVELUP_GOAL_TYPE"); v != "" {
		cfg.Scoring.GoalType = v
	}
	if v := os.Getenv("LEVELUP_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("LEVELUP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if !nonNegative(c.Athlete.BodyweightKg) {
		return fmt.Errorf("athlete.bodyweight_kg must be a non-negative number")
	}
	if !nonNegative(c.Scoring.DailyBaseXP) {
		return fmt.Errorf("scoring.daily_base_xp must be a non-negative number")
	}
	switch c.Scoring.GoalType {
	case "daily", "weekly":
	default:
		return fmt.Errorf("scoring.goal_type must be daily or weekly, got %q", c.Scoring.GoalType)
	}
	switch c.Output.Format {
	case "json", "text":
	default:
		return fmt.Errorf("output.format must be json or text, got %q", c.Output.Format)
	}
	return nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
