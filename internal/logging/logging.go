package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// FileName is the log file created inside the log directory
const FileName = "listo.log"

// New builds a slog logger backed by a charmbracelet/log logfmt handler
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       charmlog.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	return slog.New(handler), nil
}

// Init initializes the logging system, writing logs to <dir>/listo.log.
// The terminal belongs to the TUI and command output, so nothing is logged there.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	logger, err := New(file, level)
	if err != nil {
		_ = file.Close()
		return err
	}

	Logger = logger
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
