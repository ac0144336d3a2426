package cli

import (
	"testing"

	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/testutil"
)

// SetupCLITest creates an in-memory byte store and returns both the store and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.MemoryStore, *app.App) {
	t.Helper()
	store := database.NewMemoryStore()
	return store, app.New(store)
}

// SeedTasks wraps testutil.SeedTasks for CLI tests
func SeedTasks(t *testing.T, store database.KeyValueStore, tasks ...models.Task) {
	t.Helper()
	testutil.SeedTasks(t, store, tasks...)
}

// NewTestTask wraps testutil.NewTestTask for CLI tests
func NewTestTask(id, title string, completed bool) models.Task {
	return testutil.NewTestTask(id, title, completed)
}
