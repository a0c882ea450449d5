// Package postgres provides the PostgreSQL-backed high-score store.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pathfall/pathfall/internal/scores"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
    id          BIGSERIAL   PRIMARY KEY,
    name        TEXT        NOT NULL,
    experience  INTEGER     NOT NULL,
    battles_won INTEGER     NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS scores_rank_idx ON scores (experience DESC, id ASC);
`

// Store persists scores in PostgreSQL, keeping only the best results.
type Store struct {
	pool *pgxpool.Pool
	keep int
}

// Open connects to the database at dsn and creates the schema.
func Open(ctx context.Context, dsn string, keep int) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database url is required")
	}
	if keep <= 0 {
		keep = scores.DefaultKeep
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{pool: pool, keep: keep}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	s.pool.Close()
	return nil
}

// RecordResult stores a result and drops everything outside the kept top
// scores.
func (s *Store) RecordResult(ctx context.Context, name string, experience, battlesWon int) error {
	name, err := scores.Normalize(name, experience, battlesWon)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO scores (name, experience, battles_won) VALUES ($1, $2, $3)`,
		name, experience, battlesWon,
	); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM scores
		  WHERE id NOT IN (
		    SELECT id FROM scores ORDER BY experience DESC, id ASC LIMIT $1
		  )`,
		s.keep,
	); err != nil {
		return fmt.Errorf("trim scores: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit score: %w", err)
	}
	return nil
}

// Top returns up to n best scores.
func (s *Store) Top(ctx context.Context, n int) ([]scores.Score, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx,
		`SELECT name, experience, battles_won, recorded_at
		   FROM scores
		  ORDER BY experience DESC, id ASC
		  LIMIT $1`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var out []scores.Score
	for rows.Next() {
		var score scores.Score
		var recordedAt time.Time
		if err := rows.Scan(&score.Name, &score.Experience, &score.BattlesWon, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		score.RecordedAt = recordedAt.UTC()
		out = append(out, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return out, nil
}
