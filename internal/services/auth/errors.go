package auth

import "github.com/thenoetrevino/listo/internal/models"

// Validation errors, checked in this order by Register
var (
	ErrEmptyUsername    = models.NewError(models.ErrValidation, "username cannot be empty")
	ErrInvalidEmail     = models.NewError(models.ErrValidation, "email must contain '@' and '.'")
	ErrPasswordTooShort = models.NewError(models.ErrValidation, "password must be at least 6 characters")
)

var (
	ErrEmailTaken         = models.NewError(models.ErrConflict, "an account with this email already exists")
	ErrAccountExists      = models.NewError(models.ErrConflict, "an account is already registered on this device")
	ErrNoAccount          = models.NewError(models.ErrNotFound, "no account registered")
	ErrInvalidCredentials = models.NewError(models.ErrAuth, "invalid email or password")
)
