package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context

	// owned is false when the App was injected and belongs to the caller
	owned bool
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)
	application := app.New(repo,
		app.WithLogger(slog.Default()),
		app.WithStorageTimeout(cfg.Timeout()),
		app.WithCloser(repo.Close),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
