package database

import (
	"context"
	"time"
)

// WithTimeout bounds every call to inner by d. A zero or negative d returns
// inner unchanged. Deadline failures surface as *models.StorageError from the
// underlying store.
func WithTimeout(inner KeyValueStore, d time.Duration) KeyValueStore {
	if d <= 0 {
		return inner
	}
	return &timeoutStore{inner: inner, timeout: d}
}

type timeoutStore struct {
	inner   KeyValueStore
	timeout time.Duration
}

func (s *timeoutStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.Get(ctx, key)
}

func (s *timeoutStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.Set(ctx, key, value)
}

func (s *timeoutStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.Remove(ctx, key)
}

func (s *timeoutStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return Update(ctx, s.inner, key, fn)
}
