package cli

import (
	"errors"

	"github.com/thenoetrevino/listo/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, unknown flags, malformed flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown task id, no registered account.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Persisted bytes that fail to decode.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, malformed emails, short passwords, bad filters.
	ExitValidation = 5

	// ExitAuth indicates the supplied credentials were rejected.
	ExitAuth = 6

	// ExitConflict indicates the operation collides with existing state.
	// Use for: Registering while an account already exists.
	ExitConflict = 7
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	var usageErr *UsageError
	var storageErr *models.StorageError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrConflict):
		return ExitConflict
	case errors.Is(err, models.ErrAuth):
		return ExitAuth
	case errors.As(err, &storageErr) && storageErr.Op == "decode":
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitConflict:
		return "CONFLICT"
	case ExitAuth:
		return "AUTH_FAILED"
	case ExitDataErr:
		return "DATA_CORRUPT"
	}
	if errors.Is(err, models.ErrStorage) {
		return "STORAGE_ERROR"
	}
	return "ERROR"
}
