package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/models/store"
)

const runsSchema = `
	CREATE TABLE IF NOT EXISTS analysis_runs (
		id         TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		domain_id  TEXT NOT NULL,
		confidence REAL NOT NULL,
		row_count  INTEGER NOT NULL,
		degraded   INTEGER NOT NULL DEFAULT 0,
		payload    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON analysis_runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_domain ON analysis_runs(domain_id);
`

// NewDB opens (and bootstraps) the run database.
func NewDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open run database: %w", err)
	}
	if _, err := db.Exec(runsSchema); err != nil {
		return nil, fmt.Errorf("bootstrap run database: %w", err)
	}
	return db, nil
}

// Store persists analysis runs.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveRun(ctx context.Context, rec store.RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_runs (id, created_at, domain_id, confidence, row_count, degraded, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.DomainID, rec.Confidence, rec.RowCount, rec.Degraded, string(rec.Payload),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", rec.ID, err)
	}
	return nil
}

func (s *Store) GetRun(ctx context.Context, id string) (*store.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, domain_id, confidence, row_count, degraded, payload
		FROM analysis_runs WHERE id = ?`, id)

	var rec store.RunRecord
	var payload string
	err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.DomainID, &rec.Confidence, &rec.RowCount, &rec.Degraded, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	rec.Payload = []byte(payload)
	return &rec, nil
}

func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, domain_id, confidence, row_count, degraded
		FROM analysis_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []store.RunRecord
	for rows.Next() {
		var rec store.RunRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.DomainID, &rec.Confidence, &rec.RowCount, &rec.Degraded); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
