// Package testutil holds shared fixtures for package tests: byte stores,
// seeded collections and stdout capture.
package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/listo/internal/converters"
	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
)

// ErrInjected is the cause carried by failures from FailingStore
var ErrInjected = errors.New("injected failure")

// SetupTestDB creates an in-memory SQLite byte store with the full schema
func SetupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// OpenTestDB opens the SQLite database file at path. Calling it twice with
// the same path gives two independent handles, like two listo processes.
func OpenTestDB(t *testing.T, path string) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open database %s: %v", path, err)
	}
	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// SeedTasks writes tasks straight into the byte store under the tasks key
func SeedTasks(t *testing.T, store database.KeyValueStore, tasks ...models.Task) {
	t.Helper()
	data, err := converters.EncodeTasks(tasks)
	if err != nil {
		t.Fatalf("Failed to encode tasks: %v", err)
	}
	if err := store.Set(context.Background(), "tasks", data); err != nil {
		t.Fatalf("Failed to seed tasks: %v", err)
	}
}

// SeedRaw writes arbitrary bytes under key
func SeedRaw(t *testing.T, store database.KeyValueStore, key string, value []byte) {
	t.Helper()
	if err := store.Set(context.Background(), key, value); err != nil {
		t.Fatalf("Failed to seed %s: %v", key, err)
	}
}

// NewTestTask builds a task with a fixed creation time for seeding
func NewTestTask(id, title string, completed bool) models.Task {
	return models.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		CreatedAt: time.UnixMilli(1727164800000),
	}
}

// FailingStore wraps a MemoryStore and fails operations on demand
type FailingStore struct {
	*database.MemoryStore

	mu       sync.Mutex
	failGet  bool
	failSet  bool
	setCalls int
}

// NewFailingStore creates a FailingStore that initially succeeds
func NewFailingStore() *FailingStore {
	return &FailingStore{MemoryStore: database.NewMemoryStore()}
}

// FailGets makes subsequent Get calls fail (or succeed again with false)
func (f *FailingStore) FailGets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGet = fail
}

// FailSets makes subsequent Set and Remove calls fail (or succeed again with false)
func (f *FailingStore) FailSets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet = fail
}

// SetCalls returns how many Set calls were attempted, failed ones included
func (f *FailingStore) SetCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

func (f *FailingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return nil, false, models.NewStorageError("get", key, ErrInjected)
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *FailingStore) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	f.setCalls++
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return models.NewStorageError("set", key, ErrInjected)
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *FailingStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return models.NewStorageError("remove", key, ErrInjected)
	}
	return f.MemoryStore.Remove(ctx, key)
}
