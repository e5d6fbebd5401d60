// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/vigcrack/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			alphabet TEXT NOT NULL,
			reference TEXT NOT NULL,
			key_len INTEGER NOT NULL,
			text_length INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_candidates (
			run_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			score REAL NOT NULL,
			key_text TEXT NOT NULL,
			key_length INTEGER NOT NULL,
			plaintext TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed run and its ranked candidates.
func (s *Store) InsertRun(ctx context.Context, run model.Run, candidates []model.Candidate) (_ int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, mode, alphabet, reference, key_len, text_length)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Mode,
		run.Alphabet,
		run.Reference,
		run.KeyLen,
		run.TextLength,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(candidates) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_candidates (run_id, position, score, key_text, key_length, plaintext)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, c := range candidates {
			if _, err := stmt.ExecContext(ctx, id, c.Rank, c.Score, c.Key, c.KeyLength, c.Plaintext); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns runs with their best candidate, oldest first.
func (s *Store) ListRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.RunSummary, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Mode != "" {
		clauses = append(clauses, "r.mode = ?")
		args = append(args, cfg.Mode)
	}
	if cfg.Alphabet != "" {
		clauses = append(clauses, "r.alphabet = ?")
		args = append(args, cfg.Alphabet)
	}
	if cfg.Since != nil {
		// created_at is stored in UTC and compared as text.
		clauses = append(clauses, "r.created_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT r.id, r.created_at, r.mode, r.alphabet, r.reference, r.key_len, r.text_length,
		(SELECT COUNT(*) FROM run_candidates c WHERE c.run_id = r.id) AS candidates,
		b.score, b.key_text, b.key_length
		FROM runs r
		LEFT JOIN run_candidates b ON b.run_id = r.id AND b.position = 1
		WHERE %s
		ORDER BY r.created_at ASC, r.id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunSummary
	for rows.Next() {
		var summary model.RunSummary
		var createdAt string
		var score sql.NullFloat64
		var key sql.NullString
		var keyLength sql.NullInt64
		if err := rows.Scan(
			&summary.Run.ID, &createdAt, &summary.Run.Mode, &summary.Run.Alphabet, &summary.Run.Reference,
			&summary.Run.KeyLen, &summary.Run.TextLength, &summary.Candidates,
			&score, &key, &keyLength,
		); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		summary.Run.CreatedAt = parsed
		if score.Valid {
			summary.HasBest = true
			summary.Best = model.Candidate{
				Rank:      1,
				Score:     score.Float64,
				Key:       key.String,
				KeyLength: int(keyLength.Int64),
			}
		}
		runs = append(runs, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}
	return runs, nil
}

// GetRun returns a single run by id.
func (s *Store) GetRun(ctx context.Context, id int64) (model.Run, error) {
	var run model.Run
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, mode, alphabet, reference, key_len, text_length FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &createdAt, &run.Mode, &run.Alphabet, &run.Reference, &run.KeyLen, &run.TextLength)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Run{}, fmt.Errorf("run %d not found", id)
		}
		return model.Run{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Run{}, err
	}
	run.CreatedAt = parsed
	return run, nil
}

// ListCandidates returns the stored candidates of a run in rank order.
func (s *Store) ListCandidates(ctx context.Context, runID int64) ([]model.Candidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, score, key_text, key_length, plaintext
		FROM run_candidates
		WHERE run_id = ?
		ORDER BY position ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Candidate
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.Rank, &c.Score, &c.Key, &c.KeyLength, &c.Plaintext); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
