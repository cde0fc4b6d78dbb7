package store

import (
	"context"

	"github.com/tkaz/blog-api/internal/domain"
)

// UserUpdate describes a partial update of a user. A nil field leaves
// the corresponding column untouched. There is no way to clear a
// column through this type; "not supplied" and "supplied as null" are
// treated identically, matching the behavior callers already rely on.
type UserUpdate struct {
	Username *string
	Email    *string
}

// IsEmpty reports whether the update names no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil
}

// UserStore defines the interface for user persistence. Every method
// executes within its own transaction; implementations are safe for
// concurrent use.
type UserStore interface {
	// Create inserts a new user with a store-assigned ID and creation
	// timestamp and returns the full entity.
	// Returns ErrDuplicate if the username or email is already taken.
	Create(ctx context.Context, username, email string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetAll returns all users. No ordering is guaranteed beyond the
	// store's natural order.
	GetAll(ctx context.Context) ([]domain.User, error)

	// Update overwrites the columns named by the update and leaves the
	// rest untouched. Returns whether a row was affected (false when
	// the ID does not exist, with a nil error).
	// Returns ErrDuplicate if the new username or email is taken.
	Update(ctx context.Context, id int64, update UserUpdate) (bool, error)

	// Delete hard-deletes the user and returns whether a row was
	// removed. Returns ErrForeignKey if posts or comments still
	// reference the user.
	Delete(ctx context.Context, id int64) (bool, error)
}
