package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the kv schema
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	require.NoError(t, err)
	repo := NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// setupFileDB creates a database file in a temp dir and returns its path
func setupFileDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "listo.db")
}
