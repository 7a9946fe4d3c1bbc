package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run represents one process invocation
type Run struct {
	RunID       int64
	CreatedAt   time.Time
	SourceDir   string
	OrbitDate   string
	OutputFile  string
	ReportCount int
	BodyCount   int
	FailedCount int
}

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// CreateRun inserts a new run and returns its run_id.
func (db *DB) CreateRun(sourceDir, orbitDate, outputFile string, reportCount int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (source_dir, orbit_date, output_file, report_count)
		VALUES (?, ?, ?, ?)
	`, sourceDir, orbitDate, outputFile, reportCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// UpdateRunStats records the final body and failure counts.
func (db *DB) UpdateRunStats(runID int64, bodyCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs SET body_count = ?, failed_count = ?
		WHERE run_id = ?
	`, bodyCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

// GetRunByID retrieves run details
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, source_dir, orbit_date, output_file,
		       report_count, body_count, failed_count
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.SourceDir, &r.OrbitDate, &r.OutputFile,
		&r.ReportCount, &r.BodyCount, &r.FailedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, source_dir, orbit_date, output_file,
		       report_count, body_count, failed_count
		FROM runs
		ORDER BY run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.SourceDir, &r.OrbitDate, &r.OutputFile,
			&r.ReportCount, &r.BodyCount, &r.FailedCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
