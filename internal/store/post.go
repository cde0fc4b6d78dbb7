package store

import (
	"context"

	"github.com/tkaz/blog-api/internal/domain"
)

// PostUpdate describes a partial update of a post. A nil field leaves
// the corresponding column untouched. UpdatedAt is always refreshed
// when the update affects a row, even if only one field is supplied.
type PostUpdate struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the update names no fields at all.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}

// PostStore defines the interface for post persistence. Every method
// executes within its own transaction; implementations are safe for
// concurrent use.
type PostStore interface {
	// Create inserts a new post authored by userID, with UpdatedAt
	// left absent until the first update.
	// Returns ErrForeignKey if userID does not exist.
	Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error)

	// GetByID retrieves a post by ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetByIDWithUser retrieves a post joined with its author.
	// Returns ErrPostNotFound if the post does not exist.
	GetByIDWithUser(ctx context.Context, id int64) (*domain.PostWithUser, error)

	// GetAll returns all posts.
	GetAll(ctx context.Context) ([]domain.Post, error)

	// GetAllWithUsers returns all posts, each joined with its author.
	GetAllWithUsers(ctx context.Context) ([]domain.PostWithUser, error)

	// GetByUserID returns all posts authored by one user.
	GetByUserID(ctx context.Context, userID int64) ([]domain.Post, error)

	// Update overwrites the columns named by the update, refreshes
	// UpdatedAt, and returns whether a row was affected.
	Update(ctx context.Context, id int64, update PostUpdate) (bool, error)

	// Delete hard-deletes the post and returns whether a row was
	// removed. Returns ErrForeignKey if comments still reference the
	// post; the schema does not cascade.
	Delete(ctx context.Context, id int64) (bool, error)
}
