package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend persists the state blob in a single-row key/value table,
// for deployments where the process filesystem is not durable.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend connects to the database and ensures the state table
// exists.
func NewPostgresBackend(ctx context.Context, databaseURL string) (*PostgresBackend, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
	}

	return &PostgresBackend{pool: pool}, nil
}

// Load reads the persisted state blob. Returns nil state when no row exists
// under the fixed key.
func (b *PostgresBackend) Load(ctx context.Context) (*PersistedState, error) {
	var data []byte
	err := b.pool.QueryRow(ctx,
		`SELECT data FROM app_state WHERE key = $1`, StorageKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse persisted state: %w", err)
	}
	return &state, nil
}

// Save upserts the persisted state blob under the fixed key.
func (b *PostgresBackend) Save(ctx context.Context, state *PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	_, err = b.pool.Exec(ctx,
		`INSERT INTO app_state (key, data)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET data = $2, updated_at = NOW()`,
		StorageKey, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (b *PostgresBackend) Close() error {
	if b.pool != nil {
		b.pool.Close()
	}
	return nil
}
