package app

import (
	"log/slog"

	"github.com/thenoetrevino/listo/internal/database"
	authservice "github.com/thenoetrevino/listo/internal/services/auth"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// App holds all application services and provides dependency injection.
// Both services share one byte store; each serializes its own operations.
type App struct {
	store  database.KeyValueStore
	closer func() error

	TaskService taskservice.Service
	AuthService authservice.Service
}

// New creates a new App with all services initialized.
func New(store database.KeyValueStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	store = database.WithTimeout(store, cfg.storageTimeout)

	return &App{
		store:       store,
		closer:      cfg.closer,
		TaskService: taskservice.NewService(store, taskservice.WithLogger(cfg.logger)),
		AuthService: authservice.NewService(store, authservice.WithLogger(cfg.logger)),
	}
}

// Store returns the byte store the services persist through
func (a *App) Store() database.KeyValueStore {
	return a.store
}

// Close releases the resources registered with WithCloser
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
