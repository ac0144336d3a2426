// Package database defines the persistent key-value byte store the task and
// credential stores are built on, with SQLite and in-memory implementations.
package database

import (
	"context"
)

// KeyValueStore is a durable, string-keyed byte store.
//
// Get reports found=false with a nil error when the key is absent. All
// methods return *models.StorageError on failure, and a successful Set or
// Remove is durable once it returns.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// UpdateFunc computes the next value of a key from its current one. Returning
// an error aborts the update and nothing is written.
type UpdateFunc func(old []byte, found bool) ([]byte, error)

// Updater is implemented by stores that run a read-modify-write of one key
// atomically, even against other processes sharing the same backing file.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Update stores fn's result under key. Stores implementing Updater apply it
// atomically; any other store gets a Get followed by a Set. An error returned
// by fn comes back unchanged.
func Update(ctx context.Context, store KeyValueStore, key string, fn UpdateFunc) error {
	if u, ok := store.(Updater); ok {
		return u.Update(ctx, key, fn)
	}

	old, found, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	value, err := fn(old, found)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, value)
}
