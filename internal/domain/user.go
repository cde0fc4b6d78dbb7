package domain

import "strings"

// Username and email column widths in the users table.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 100
)

// User represents a registered author. Username and email are unique
// across all users; uniqueness is enforced by the store, not here.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

// ValidateNewUser checks the fields supplied to UserStore.Create.
// Returns a validation error for the first invalid field.
func ValidateNewUser(username, email string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	return ValidateEmail(email)
}

// ValidateUsername checks that a username is non-empty and fits the
// users.username column.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

// ValidateEmail checks that an email is non-empty, fits the
// users.email column, and looks like an address. The format check is
// deliberately loose; the store does not care beyond column width.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	if !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}
