package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// Run is one recorded report generation: which group ran, what it found and
// where the output went.
type Run struct {
	// ID is a generated UUID; filled by Record when empty.
	ID string

	// StartedAt is when the generation pass began.
	StartedAt time.Time

	// Group is the report group name.
	Group string

	// Policies is the number of policies extracted for the group.
	Policies int

	// Rows is the number of data rows written.
	Rows int

	// MaxLen is the padding target length of the run.
	MaxLen int

	// OutputPath is the written report file.
	OutputPath string

	// Status is "success" or "error".
	Status string

	// Error holds the failure message for error runs.
	Error string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	started_at   INTEGER NOT NULL,
	grp          TEXT NOT NULL,
	policy_count INTEGER NOT NULL,
	row_count    INTEGER NOT NULL,
	max_len      INTEGER NOT NULL,
	output_path  TEXT NOT NULL,
	status       TEXT NOT NULL,
	error        TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_runs_grp ON runs(grp);
`

// Store persists report runs in a SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the history database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database %q: %w", path, err)
	}

	// A CLI writes from one goroutine at a time; a single connection
	// avoids SQLITE_BUSY without a busy-timeout dance.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With("component", "history"),
	}, nil
}

// Record inserts a run, assigning an ID and start time when unset.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, grp, policy_count, row_count, max_len, output_path, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UnixMilli(), run.Group, run.Policies, run.Rows,
		run.MaxLen, run.OutputPath, run.Status, run.Error,
	)
	if err != nil {
		return fmt.Errorf("record run for group %q: %w", run.Group, err)
	}

	s.logger.Debug("run recorded",
		"run_id", run.ID,
		"group", run.Group,
		"status", run.Status,
	)
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, grp, policy_count, row_count, max_len, output_path, status, error
		 FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var startedAt int64
		if err := rows.Scan(&run.ID, &startedAt, &run.Group, &run.Policies,
			&run.Rows, &run.MaxLen, &run.OutputPath, &run.Status, &run.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = time.UnixMilli(startedAt)
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Prune deletes runs older than the given age and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UnixMilli()

	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}

	if deleted > 0 {
		s.logger.Info("pruned history runs", "deleted", deleted)
	}
	return deleted, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
