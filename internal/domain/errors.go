package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error that all field validation errors wrap.
// Callers can match any validation failure with errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation failed")

// Field validation errors returned before a write is attempted.
// Uniqueness and referential integrity are NOT checked here; the
// store enforces those and reports violations as store errors.
var (
	ErrEmptyUsername   = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooLong = fmt.Errorf("%w: username must be at most 50 characters", ErrValidation)
	ErrEmptyEmail      = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmailTooLong    = fmt.Errorf("%w: email must be at most 100 characters", ErrValidation)
	ErrInvalidEmail    = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyTitle      = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong    = fmt.Errorf("%w: title must be at most 100 characters", ErrValidation)
	ErrEmptyContent    = fmt.Errorf("%w: content cannot be empty", ErrValidation)
	ErrInvalidID       = fmt.Errorf("%w: invalid ID", ErrValidation)
)
