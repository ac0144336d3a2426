package database

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/thenoetrevino/listo/internal/models"
)

// MemoryStore is a KeyValueStore held in process memory. It backs tests and
// any session that must not touch disk.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	sets   atomic.Int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, models.NewStorageError("get", key, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return models.NewStorageError("set", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte{}, value...)
	m.sets.Add(1)
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return models.NewStorageError("remove", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// SetCount returns how many successful writes the store has accepted
func (m *MemoryStore) SetCount() int64 {
	return m.sets.Load()
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
