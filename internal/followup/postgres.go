package followup

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists follow-up tracking records in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the tracking table
// exists.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// NewPostgresStore wraps an existing pool without schema management.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS follow_up_tracking (
			user_id         UUID        NOT NULL,
			resume_id       TEXT        NOT NULL DEFAULT '',
			session_id      TEXT        NOT NULL DEFAULT '',
			base_question   TEXT        NOT NULL,
			follow_up_count INT         NOT NULL DEFAULT 0,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, resume_id, session_id, base_question)
		)`)
	if err != nil {
		return &StoreError{Op: "ensure schema", Cause: err}
	}
	return nil
}

// ScopeTotal sums followUpCount across all records in the scope.
func (s *PostgresStore) ScopeTotal(ctx context.Context, scope Scope) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(follow_up_count), 0)
		 FROM follow_up_tracking
		 WHERE user_id = $1 AND resume_id = $2 AND session_id = $3`,
		scope.UserID, scope.ResumeID, scope.SessionID,
	).Scan(&total)
	if err != nil {
		return 0, &StoreError{Op: "scope total", Cause: err}
	}
	return total, nil
}

// Record increments the count for (scope, baseQuestion) with the cap
// enforced atomically. A transaction-scoped advisory lock on the scope key
// serializes concurrent requests for the same scope, so two racing calls
// cannot both pass the cap check before either increments.
func (s *PostgresStore) Record(ctx context.Context, scope Scope, baseQuestion string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return &StoreError{Op: "begin", Cause: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		scope.Key(),
	); err != nil {
		return &StoreError{Op: "lock scope", Cause: err}
	}

	var total int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(follow_up_count), 0)
		 FROM follow_up_tracking
		 WHERE user_id = $1 AND resume_id = $2 AND session_id = $3`,
		scope.UserID, scope.ResumeID, scope.SessionID,
	).Scan(&total)
	if err != nil {
		return &StoreError{Op: "scope total", Cause: err}
	}

	if total >= MaxFollowUps {
		return &BudgetExceededError{Scope: scope}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO follow_up_tracking (user_id, resume_id, session_id, base_question, follow_up_count)
		 VALUES ($1, $2, $3, $4, 1)
		 ON CONFLICT (user_id, resume_id, session_id, base_question)
		 DO UPDATE SET follow_up_count = follow_up_tracking.follow_up_count + 1,
		               updated_at = NOW()`,
		scope.UserID, scope.ResumeID, scope.SessionID, baseQuestion,
	); err != nil {
		return &StoreError{Op: "record", Cause: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &StoreError{Op: "commit", Cause: err}
	}
	return nil
}
