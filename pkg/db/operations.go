package db

import (
	"database/sql"
	"fmt"

	"github.com/dtnitsch/horizons-parser/models"
)

// BodyRecord is a stored body of a run.
type BodyRecord struct {
	RunID       int64
	ObjectID    string
	Name        string
	Type        models.BodyType
	Mass        float64
	Density     float64
	Position    models.Vector
	Velocity    models.Vector
	ContentHash string
}

// FailureRecord is a report of a run that produced no body.
type FailureRecord struct {
	RunID        int64
	ObjectID     string
	ErrorType    string
	ErrorMessage string
}

// InsertBody stores a parsed body for a run. contentHash identifies the raw
// report it came from.
func (db *DB) InsertBody(runID int64, b *models.Body, contentHash string) error {
	_, err := db.Exec(`
		INSERT INTO bodies (run_id, object_id, name, type, mass, density,
		                    x, y, z, vx, vy, vz, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, object_id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			mass = excluded.mass,
			density = excluded.density,
			x = excluded.x, y = excluded.y, z = excluded.z,
			vx = excluded.vx, vy = excluded.vy, vz = excluded.vz,
			content_hash = excluded.content_hash
	`, runID, b.ID, b.Name, b.Type.String(), b.Mass, b.Density,
		b.Position.X, b.Position.Y, b.Position.Z,
		b.Velocity.X, b.Velocity.Y, b.Velocity.Z,
		NewNullString(contentHash))
	if err != nil {
		return fmt.Errorf("failed to insert body %s: %w", b.ID, err)
	}
	return nil
}

// InsertFailure records why a report of a run produced no body.
func (db *DB) InsertFailure(runID int64, objectID, errorType, errorMessage string) error {
	_, err := db.Exec(`
		INSERT INTO run_failures (run_id, object_id, error_type, error_message)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, object_id) DO UPDATE SET
			error_type = excluded.error_type,
			error_message = excluded.error_message
	`, runID, objectID, errorType, NewNullString(errorMessage))
	if err != nil {
		return fmt.Errorf("failed to insert failure %s: %w", objectID, err)
	}
	return nil
}

// GetRunBodies returns the bodies of a run ordered by object id.
func (db *DB) GetRunBodies(runID int64) ([]BodyRecord, error) {
	rows, err := db.Query(`
		SELECT run_id, object_id, name, type, mass, density,
		       x, y, z, vx, vy, vz, COALESCE(content_hash, '')
		FROM bodies
		WHERE run_id = ?
		ORDER BY object_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run bodies: %w", err)
	}
	defer rows.Close()

	var bodies []BodyRecord
	for rows.Next() {
		var b BodyRecord
		var typ string
		if err := rows.Scan(&b.RunID, &b.ObjectID, &b.Name, &typ, &b.Mass, &b.Density,
			&b.Position.X, &b.Position.Y, &b.Position.Z,
			&b.Velocity.X, &b.Velocity.Y, &b.Velocity.Z, &b.ContentHash); err != nil {
			return nil, fmt.Errorf("failed to scan body: %w", err)
		}
		if b.Type, err = models.ParseBodyType(typ); err != nil {
			return nil, fmt.Errorf("body %s: %w", b.ObjectID, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, rows.Err()
}

// GetRunFailures returns the failures of a run ordered by object id.
func (db *DB) GetRunFailures(runID int64) ([]FailureRecord, error) {
	rows, err := db.Query(`
		SELECT run_id, object_id, error_type, COALESCE(error_message, '')
		FROM run_failures
		WHERE run_id = ?
		ORDER BY object_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run failures: %w", err)
	}
	defer rows.Close()

	var failures []FailureRecord
	for rows.Next() {
		var f FailureRecord
		if err := rows.Scan(&f.RunID, &f.ObjectID, &f.ErrorType, &f.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan failure: %w", err)
		}
		failures = append(failures, f)
	}
	return failures, rows.Err()
}

// CountBodiesByType returns how many bodies of each type a run stored.
func (db *DB) CountBodiesByType(runID int64) (map[string]int, error) {
	rows, err := db.Query(`
		SELECT type, COUNT(*) FROM bodies
		WHERE run_id = ?
		GROUP BY type
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bodies: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[typ] = n
	}
	return counts, rows.Err()
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
