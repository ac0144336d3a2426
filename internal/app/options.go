package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger         *slog.Logger
	storageTimeout time.Duration
	closer         func() error
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStorageTimeout bounds every byte-store call; zero disables the bound
func WithStorageTimeout(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.storageTimeout = d
	}
}

// WithCloser registers a cleanup run by App.Close, typically the database handle
func WithCloser(closer func() error) Option {
	return func(cfg *appConfig) {
		cfg.closer = closer
	}
}
