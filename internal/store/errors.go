package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert or update would violate a
	// unique constraint (e.g. a user with the same username or email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrForeignKey is returned when an operation would violate
	// referential integrity: inserting a row that references a
	// nonexistent parent, or deleting a row that is still referenced.
	// The schema declares no cascades, so such deletes always fail.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrTransactionFailed is returned when a transaction fails to
	// begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including the entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is a unique-constraint violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsForeignKeyError checks if the error is a referential-integrity
// violation.
func IsForeignKeyError(err error) bool {
	return errors.Is(err, ErrForeignKey)
}
