package store

import (
	"context"

	"github.com/tkaz/blog-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
// Comments have no update path: they are created, read, and deleted.
// All list operations return comments ordered by ID ascending, an
// insertion-order proxy that callers rely on for stable listings.
type CommentStore interface {
	// Create inserts a new comment on postID authored by userID.
	// Returns ErrForeignKey if either postID or userID does not exist.
	Create(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error)

	// GetByID retrieves a comment by ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// GetByIDWithUser retrieves a comment joined with its author.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByIDWithUser(ctx context.Context, id int64) (*domain.CommentWithUser, error)

	// GetByIDWithPostAndUser retrieves a comment joined with both its
	// post and its author.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByIDWithPostAndUser(ctx context.Context, id int64) (*domain.CommentWithPostAndUser, error)

	// GetByPostID returns all comments on a post, ordered by ID ascending.
	GetByPostID(ctx context.Context, postID int64) ([]domain.Comment, error)

	// GetByUserID returns all comments by a user, ordered by ID ascending.
	GetByUserID(ctx context.Context, userID int64) ([]domain.Comment, error)

	// GetByPostIDWithUsers returns all comments on a post, each joined
	// with its author, ordered by ID ascending.
	GetByPostIDWithUsers(ctx context.Context, postID int64) ([]domain.CommentWithUser, error)

	// GetByUserIDWithPosts returns all comments by a user, each joined
	// with its post and author, ordered by ID ascending.
	GetByUserIDWithPosts(ctx context.Context, userID int64) ([]domain.CommentWithPostAndUser, error)

	// Delete hard-deletes the comment and returns whether a row was
	// removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
