package models

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors in the service packages wrap one of these so
// callers can branch with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrStorage    = errors.New("storage error")
)

// StorageError reports a failed read, write or decode against the byte store
type StorageError struct {
	Op  string // "get", "set", "remove" or "decode"
	Key string
	Err error
}

// NewStorageError wraps err as a StorageError for the given operation and key
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorage
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// kindError is a fixed-message error classified under one of the kinds above
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NewError returns an error with message msg that matches kind under errors.Is
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Errorf is NewError with a formatted message
func Errorf(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
