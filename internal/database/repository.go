package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/thenoetrevino/listo/internal/models"
)

const upsertSQL = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

// Repository is a KeyValueStore backed by the SQLite kv table
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository wraps an initialized database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Get returns the value stored under key
func (r *Repository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, models.NewStorageError("get", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, upsertSQL, key, value, r.now().UnixMilli())
	if err != nil {
		return models.NewStorageError("set", key, err)
	}
	return nil
}

// Update runs fn inside a write transaction so a concurrent writer on the
// same database file cannot slip in between the read and the write.
// BEGIN IMMEDIATE takes the write lock up front; busy_timeout covers the wait.
func (r *Repository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return models.NewStorageError("update", key, err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return models.NewStorageError("update", key, err)
	}
	committed := false
	defer func() {
		if !committed {
			// The caller's context may already be done
			if _, rbErr := conn.ExecContext(context.WithoutCancel(ctx), "ROLLBACK"); rbErr != nil {
				slog.Error("failed to roll back update", "key", key, "error", rbErr)
			}
		}
	}()

	var old []byte
	found := true
	err = conn.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&old)
	if errors.Is(err, sql.ErrNoRows) {
		old, found = nil, false
	} else if err != nil {
		return models.NewStorageError("get", key, err)
	}

	value, err := fn(old, found)
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}

	if _, err := conn.ExecContext(ctx, upsertSQL, key, value, r.now().UnixMilli()); err != nil {
		return models.NewStorageError("set", key, err)
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return models.NewStorageError("set", key, err)
	}
	committed = true
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (r *Repository) Remove(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return models.NewStorageError("remove", key, err)
	}
	return nil
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}
