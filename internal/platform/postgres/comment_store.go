package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tkaz/blog-api/internal/domain"
	"github.com/tkaz/blog-api/internal/platform/logger"
	"github.com/tkaz/blog-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of
// the CommentStore interface. It accepts the shared connection pool,
// which is initialized and owned by the caller. If logger is nil, the
// default logger is used.
func NewPostgresCommentStore(db *sql.DB, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentColumns = "comment_id, post_id, user_id, content, created_at"

// commentWithUserQuery selects a comment inner-joined with its author.
const commentWithUserQuery = `
	SELECT c.comment_id, c.post_id, c.content, c.created_at,
	       u.user_id, u.username, u.email, u.created_at
	FROM comments c
	INNER JOIN users u ON c.user_id = u.user_id
`

// commentWithPostAndUserQuery selects a comment inner-joined with both
// its post and its author.
const commentWithPostAndUserQuery = `
	SELECT c.comment_id, c.content, c.created_at,
	       p.post_id, p.user_id, p.title, p.content, p.created_at, p.updated_at,
	       u.user_id, u.username, u.email, u.created_at
	FROM comments c
	INNER JOIN posts p ON c.post_id = p.post_id
	INNER JOIN users u ON c.user_id = u.user_id
`

// scanComment maps a result row onto a domain.Comment.
func scanComment(row interface{ Scan(dest ...any) error }) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// scanCommentWithUser maps a joined comment/user row onto a
// domain.CommentWithUser.
func scanCommentWithUser(row interface{ Scan(dest ...any) error }) (*domain.CommentWithUser, error) {
	var c domain.CommentWithUser
	if err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.Content,
		&c.CreatedAt,
		&c.User.ID,
		&c.User.Username,
		&c.User.Email,
		&c.User.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// scanCommentWithPostAndUser maps a comment/post/user row onto a
// domain.CommentWithPostAndUser.
func scanCommentWithPostAndUser(
	row interface{ Scan(dest ...any) error },
) (*domain.CommentWithPostAndUser, error) {
	var c domain.CommentWithPostAndUser
	if err := row.Scan(
		&c.ID,
		&c.Content,
		&c.CreatedAt,
		&c.Post.ID,
		&c.Post.UserID,
		&c.Post.Title,
		&c.Post.Content,
		&c.Post.CreatedAt,
		&c.Post.UpdatedAt,
		&c.User.ID,
		&c.User.Username,
		&c.User.Email,
		&c.User.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrForeignKey if postID or userID does not reference
// an existing row.
func (s *PostgresCommentStore) Create(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateNewComment(content); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO comments (post_id, user_id, content, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING comment_id
		`
		if err := tx.QueryRowContext(ctx, query,
			comment.PostID, comment.UserID, comment.Content, comment.CreatedAt).
			Scan(&comment.ID); err != nil {
			return MapError(err)
		}
		return nil
	})
	if err != nil {
		if store.IsForeignKeyError(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int64("post_id", postID),
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create comment",
				slog.String("error", err.Error()),
				slog.Int64("post_id", postID))
		}
		return nil, err
	}

	log.Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", comment.PostID),
		slog.Int64("user_id", comment.UserID))
	return comment, nil
}

// GetByID implements store.CommentStore.GetByID
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comment *domain.Comment
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := fmt.Sprintf("SELECT %s FROM comments WHERE comment_id = $1", commentColumns)
		c, err := scanComment(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrCommentNotFound
			}
			return err
		}
		comment = c
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("comment not found", slog.Int64("comment_id", id))
		} else {
			log.Error("failed to get comment by ID",
				slog.String("error", err.Error()),
				slog.Int64("comment_id", id))
		}
		return nil, err
	}

	return comment, nil
}

// GetByIDWithUser implements store.CommentStore.GetByIDWithUser
// Inner join between comments and users on user_id.
func (s *PostgresCommentStore) GetByIDWithUser(ctx context.Context, id int64) (*domain.CommentWithUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comment *domain.CommentWithUser
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := commentWithUserQuery + " WHERE c.comment_id = $1"
		c, err := scanCommentWithUser(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrCommentNotFound
			}
			return err
		}
		comment = c
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("comment not found", slog.Int64("comment_id", id))
		} else {
			log.Error("failed to get comment with user",
				slog.String("error", err.Error()),
				slog.Int64("comment_id", id))
		}
		return nil, err
	}

	return comment, nil
}

// GetByIDWithPostAndUser implements store.CommentStore.GetByIDWithPostAndUser
// Two inner joins, on post_id and user_id respectively.
func (s *PostgresCommentStore) GetByIDWithPostAndUser(ctx context.Context, id int64) (*domain.CommentWithPostAndUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comment *domain.CommentWithPostAndUser
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := commentWithPostAndUserQuery + " WHERE c.comment_id = $1"
		c, err := scanCommentWithPostAndUser(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrCommentNotFound
			}
			return err
		}
		comment = c
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("comment not found", slog.Int64("comment_id", id))
		} else {
			log.Error("failed to get comment with post and user",
				slog.String("error", err.Error()),
				slog.Int64("comment_id", id))
		}
		return nil, err
	}

	return comment, nil
}

// GetByPostID implements store.CommentStore.GetByPostID
// Ordered by comment_id ascending; callers rely on this for stable
// listings.
func (s *PostgresCommentStore) GetByPostID(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM comments WHERE post_id = $1 ORDER BY comment_id", commentColumns)
	return s.listComments(ctx, query, postID)
}

// GetByUserID implements store.CommentStore.GetByUserID
// Same ordering contract as GetByPostID.
func (s *PostgresCommentStore) GetByUserID(ctx context.Context, userID int64) ([]domain.Comment, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM comments WHERE user_id = $1 ORDER BY comment_id", commentColumns)
	return s.listComments(ctx, query, userID)
}

// listComments runs a comment query and materializes the result set.
func (s *PostgresCommentStore) listComments(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comments []domain.Comment
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		comments, err = collectRows(ctx, tx, scanComment, query, args...)
		return err
	})
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, err
	}

	return comments, nil
}

// GetByPostIDWithUsers implements store.CommentStore.GetByPostIDWithUsers
// Each comment carries its author; ordered by comment_id ascending.
func (s *PostgresCommentStore) GetByPostIDWithUsers(ctx context.Context, postID int64) ([]domain.CommentWithUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comments []domain.CommentWithUser
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := commentWithUserQuery + " WHERE c.post_id = $1 ORDER BY c.comment_id"
		var err error
		comments, err = collectRows(ctx, tx, scanCommentWithUser, query, postID)
		return err
	})
	if err != nil {
		log.Error("failed to list comments with users",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return nil, err
	}

	return comments, nil
}

// GetByUserIDWithPosts implements store.CommentStore.GetByUserIDWithPosts
// Each comment carries both its post and its author; ordered by
// comment_id ascending.
func (s *PostgresCommentStore) GetByUserIDWithPosts(ctx context.Context, userID int64) ([]domain.CommentWithPostAndUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comments []domain.CommentWithPostAndUser
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := commentWithPostAndUserQuery + " WHERE c.user_id = $1 ORDER BY c.comment_id"
		var err error
		comments, err = collectRows(ctx, tx, scanCommentWithPostAndUser, query, userID)
		return err
	})
	if err != nil {
		log.Error("failed to list comments with posts and users",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}

	return comments, nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var affected bool
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
		if err != nil {
			return MapError(err)
		}
		affected, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return false, err
	}

	if affected {
		log.Info("comment deleted", slog.Int64("comment_id", id))
	}
	return affected, nil
}
