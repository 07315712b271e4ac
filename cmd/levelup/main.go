package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/levelup/internal/config"
	"github.com/claude/levelup/internal/ingest/alpha"
	"github.com/claude/levelup/internal/models"
	"github.com/claude/levelup/internal/report"
	"github.com/claude/levelup/internal/snapshot"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	snapshotPath := flag.String("snapshot", "", "path to snapshot YAML/JSON (required)")
	alphaPath := flag.String("alpha", "", "path to an Alpha Progression CSV export to score as well")
	format := flag.String("format", "", "output format: json or text (overrides config)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("levelup", Version)
		return
	}

	if *snapshotPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: levelup -snapshot snapshot.yaml [-config config.yaml] [-alpha export.csv] [-format json|text]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Output.Format = *format
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	log.Debug("levelup starting", "version", Version)

	snap, err := snapshot.NewLoader(log).Load(*snapshotPath)
	if err != nil {
		log.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}
	log.Info("snapshot loaded",
		"skills", len(snap.Skills),
		"characteristics", len(snap.Characteristics),
		"workouts", len(snap.Workouts))

	var sessions []models.AlphaSession
	if *alphaPath != "" {
		sessions, err = loadAlpha(*alphaPath, log)
		if err != nil {
			log.Error("failed to load Alpha Progression export", "error", err)
			os.Exit(1)
		}
	}

	opts := report.Options{
		DailyBaseXP: cfg.Scoring.DailyBaseXP,
		GoalType:    models.GoalType(cfg.Scoring.GoalType),
	}
	if cfg.Athlete.BodyweightKg > 0 {
		opts.BodyweightKg = models.Float(cfg.Athlete.BodyweightKg)
	}

	r := report.NewBuilder(opts, log).Build(snap, sessions)

	switch cfg.Output.Format {
	case "text":
		err = report.WriteText(os.Stdout, r)
	case "json":
		err = report.WriteJSON(os.Stdout, r)
	default:
		err = fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	if err != nil {
		log.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}

func loadAlpha(path string, log *slog.Logger) ([]models.AlphaSession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	sessions, err := alpha.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}

	stats := alpha.Summarize(sessions)
	log.Info("alpha export parsed",
		"sessions_received", stats.SessionsReceived,
		"sessions_scored", stats.SessionsScored,
		"sessions_skipped", stats.SessionsSkipped,
		"sets_received", stats.SetsReceived,
		"warmups_dropped", stats.WarmupsDropped,
	)
	if stats.Message != "" {
		log.Warn(stats.Message)
	}
	return sessions, nil
}
