package task

import "github.com/thenoetrevino/listo/internal/models"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle = models.NewError(models.ErrValidation, "task cannot be empty")

	// Business logic errors
	ErrTaskNotFound = models.NewError(models.ErrNotFound, "task not found")
)
