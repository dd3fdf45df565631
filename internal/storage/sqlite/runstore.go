// Package sqlite persists a durable history of gauge generation runs.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Run statuses.
const (
	RunStatusComplete = "complete"
	RunStatusError    = "error"
)

// Run records one video generation request and its outcome.
type Run struct {
	RunID         string `json:"run_id"`
	SourceFile    string `json:"source_file"`
	WindowStartNs int64  `json:"window_start_ns"`
	WindowEndNs   int64  `json:"window_end_ns"`
	OutputPath    string `json:"output_path"`
	FrameCount    int    `json:"frame_count"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	DurationMs    int64  `json:"duration_ms"`
	CreatedAtNs   int64  `json:"created_at_ns"`
}

// Open opens (creating if needed) the run-history database at path and
// applies pending migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run database: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies all pending schema migrations from the embedded set.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migration setup: %w", err)
	}
	// Closing m would close the underlying DB connection; let it be
	// collected instead.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// RunStore provides persistence for generation runs.
type RunStore struct {
	db *sql.DB
}

// NewRunStore creates a RunStore backed by the given database.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

// InsertRun records a run. If run.RunID is empty a new UUID is generated.
func (s *RunStore) InsertRun(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAtNs == 0 {
		run.CreatedAtNs = time.Now().UnixNano()
	}

	query := `
		INSERT INTO generation_runs (
			run_id, source_file, window_start_ns, window_end_ns,
			output_path, frame_count, status, message, duration_ms,
			created_at_ns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		run.RunID,
		run.SourceFile,
		run.WindowStartNs,
		run.WindowEndNs,
		run.OutputPath,
		run.FrameCount,
		run.Status,
		run.Message,
		run.DurationMs,
		run.CreatedAtNs,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *RunStore) GetRun(runID string) (*Run, error) {
	query := `
		SELECT run_id, source_file, window_start_ns, window_end_ns,
		       output_path, frame_count, status, message, duration_ms,
		       created_at_ns
		FROM generation_runs
		WHERE run_id = ?
	`

	var run Run
	var message sql.NullString
	err := s.db.QueryRow(query, runID).Scan(
		&run.RunID,
		&run.SourceFile,
		&run.WindowStartNs,
		&run.WindowEndNs,
		&run.OutputPath,
		&run.FrameCount,
		&run.Status,
		&message,
		&run.DurationMs,
		&run.CreatedAtNs,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	run.Message = message.String
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT run_id, source_file, window_start_ns, window_end_ns,
		       output_path, frame_count, status, message, duration_ms,
		       created_at_ns
		FROM generation_runs
		ORDER BY created_at_ns DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var message sql.NullString
		if err := rows.Scan(
			&run.RunID,
			&run.SourceFile,
			&run.WindowStartNs,
			&run.WindowEndNs,
			&run.OutputPath,
			&run.FrameCount,
			&run.Status,
			&message,
			&run.DurationMs,
			&run.CreatedAtNs,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Message = message.String
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
