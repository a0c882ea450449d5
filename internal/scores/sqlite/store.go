// Package sqlite provides the SQLite-backed high-score store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pathfall/pathfall/internal/scores"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store persists scores in SQLite, keeping only the best results.
type Store struct {
	sqlDB *sql.DB
	keep  int
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a score store at path and creates its schema. keep bounds the
// number of retained scores; non-positive values use scores.DefaultKeep.
func Open(path string, keep int) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if keep <= 0 {
		keep = scores.DefaultKeep
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, keep: keep, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordResult stores a result and drops everything outside the kept top
// scores.
func (s *Store) RecordResult(ctx context.Context, name string, experience, battlesWon int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name, err := scores.Normalize(name, experience, battlesWon)
	if err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO scores (name, experience, battles_won, recorded_at) VALUES (?, ?, ?, ?)`,
		name, experience, battlesWon, toMillis(s.now()),
	); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM scores
		  WHERE id NOT IN (
		    SELECT id FROM scores ORDER BY experience DESC, id ASC LIMIT ?
		  )`,
		s.keep,
	); err != nil {
		return fmt.Errorf("trim scores: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score: %w", err)
	}
	return nil
}

// Top returns up to n best scores.
func (s *Store) Top(ctx context.Context, n int) ([]scores.Score, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, experience, battles_won, recorded_at
		   FROM scores
		  ORDER BY experience DESC, id ASC
		  LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var out []scores.Score
	for rows.Next() {
		var score scores.Score
		var recordedAt int64
		if err := rows.Scan(&score.Name, &score.Experience, &score.BattlesWon, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		score.RecordedAt = fromMillis(recordedAt)
		out = append(out, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return out, nil
}
