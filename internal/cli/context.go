package cli

import (
	"context"

	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/config"
)

type contextKey string

const (
	configKey contextKey = "config"
	appKey    contextKey = "app"
)

// WithConfig stores the resolved configuration on ctx for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, loading it
// from disk when the command was started without one
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// WithApp makes GetCLIFromContext use a instead of opening the configured database
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the command context: the app stored by
// WithApp if any, otherwise one over the configured database.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if testApp, ok := ctx.Value(appKey).(*app.App); ok && testApp != nil {
		return &CLI{App: testApp, Config: config.Default(), ctx: ctx}, nil
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, cfg)
}
