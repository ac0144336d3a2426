package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/tui"
)

// Launch starts the TUI over the task service of c and blocks until the
// user quits or the process receives an interrupt.
func Launch(ctx context.Context, c *cli.CLI, opts ...tea.ProgramOption) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.InitialModel(ctx, c.App.TaskService, c.Config)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
