package process

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/horizons-parser/models"
	"github.com/dtnitsch/horizons-parser/pkg/db"
	"github.com/dtnitsch/horizons-parser/pkg/export"
	"github.com/dtnitsch/horizons-parser/pkg/overrides"
	"github.com/dtnitsch/horizons-parser/pkg/parser"
	"github.com/dtnitsch/horizons-parser/pkg/storage"
	"github.com/urfave/cli/v2"
)

func ProcessAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg := models.DefaultConfig()
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		cfg = loaded
	}
	applyFlags(c, cfg)

	if cfg.RawDataDir == "" {
		return cli.Exit("Error: no raw data directory (use --raw-data-dir or raw_data_dir in --config)", 2)
	}

	orbitDate, err := ParseOrbitDate(cfg.OrbitDate)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var database *db.DB
	if !c.Bool("no-db") {
		database, err = db.OpenPath(cfg.DBPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to open database: %v", err), 2)
		}
		defer database.Close()
	}

	summary, err := Process(logger, cfg, orbitDate, database)
	if err != nil {
		logger.Error("Processing failed", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	summary.Stats.TotalTimeSeconds = time.Since(startTime).Seconds()

	if err := WriteSummary(c.App.Writer, summary, c.String("format")); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if code := ExitCode(summary); code != 0 {
		return cli.Exit("", code)
	}
	return nil
}

// applyFlags lets explicitly set CLI flags override the config file.
func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("raw-data-dir") {
		cfg.RawDataDir = c.String("raw-data-dir")
	}
	if c.IsSet("overrides") {
		cfg.OverridesFile = c.String("overrides")
	}
	if c.IsSet("output") {
		cfg.OutputFile = c.String("output")
	}
	if c.IsSet("orbit-date") {
		cfg.OrbitDate = c.String("orbit-date")
	}
	if c.IsSet("comment") {
		cfg.Comment = c.String("comment")
	}
	if c.IsSet("workers") && c.Int("workers") > 0 {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
}

// ParseOrbitDate reads "yyyy-MM-dd HH:mm" in UTC. An empty value means now,
// truncated to the minute.
func ParseOrbitDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(time.Minute), nil
	}
	t, err := time.ParseInLocation(models.OrbitDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid orbit date %q (want %q): %w", s, models.OrbitDateLayout, err)
	}
	return t, nil
}

// Process parses every report under cfg.RawDataDir, writes the CSV and, when
// database is not nil, records the run. Report failures are reported in the
// summary; only setup and output errors are returned.
func Process(logger *slog.Logger, cfg *models.Config, orbitDate time.Time, database *db.DB) (*Summary, error) {
	var ov models.Overrides
	if cfg.OverridesFile != "" {
		loaded, err := overrides.Load(cfg.OverridesFile)
		if err != nil {
			return nil, err
		}
		ov = loaded
		logger.Info("Loaded overrides", "file", cfg.OverridesFile, "count", len(ov))
	}

	store := storage.New(cfg.RawDataDir)
	reports, err := store.LoadReports()
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded reports", "dir", cfg.RawDataDir, "report_count", len(reports))

	p := parser.NewParser(ov, logger)
	results := run(logger, p, reports, cfg.Workers)
	bodies, failures := split(results)

	w := &export.Writer{}
	if err := w.WriteFile(cfg.OutputFile, bodies, orbitDate, cfg.Comment); err != nil {
		return nil, err
	}
	logger.Info("Wrote bodies", "file", cfg.OutputFile, "body_count", len(bodies))

	summary := BuildSummary(bodies, failures)
	summary.OutputFile = cfg.OutputFile
	summary.OrbitDate = orbitDate.Format(models.OrbitDateLayout)

	if database != nil {
		summary.RunID = persistRun(logger, database, cfg, summary.OrbitDate, results, len(bodies), len(failures))
	}
	return summary, nil
}

// persistRun records the run in the database. Storage problems are logged and
// do not fail the run; the returned id is 0 when the run could not be created.
func persistRun(logger *slog.Logger, database *db.DB, cfg *models.Config, orbitDate string, results []Result, bodyCount, failedCount int) int64 {
	runID, err := database.CreateRun(cfg.RawDataDir, orbitDate, cfg.OutputFile, len(results))
	if err != nil {
		logger.Warn("Failed to create run in DB", "error", err)
		return 0
	}

	for _, r := range results {
		if r.Failure != nil {
			if err := database.InsertFailure(runID, r.ID, r.Failure.Kind, r.Failure.Err.Error()); err != nil {
				logger.Warn("Failed to insert run failure", "object_id", r.ID, "error", err)
			}
			continue
		}
		if err := database.InsertBody(runID, r.Body, r.ContentHash); err != nil {
			logger.Warn("Failed to insert body", "object_id", r.ID, "error", err)
		}
	}

	if err := database.UpdateRunStats(runID, bodyCount, failedCount); err != nil {
		logger.Warn("Failed to update run stats in DB", "error", err)
	}
	logger.Info("Recorded run", "run_id", runID)
	return runID
}
