package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tkaz/blog-api/internal/domain"
	"github.com/tkaz/blog-api/internal/platform/logger"
	"github.com/tkaz/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface using a
// PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts the shared connection pool, which is
// initialized and owned by the caller. If logger is nil, the default
// logger is used.
func NewPostgresPostStore(db *sql.DB, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

const postColumns = "post_id, user_id, title, content, created_at, updated_at"

// postWithUserQuery selects a post inner-joined with its author. The
// column order matches scanPostWithUser.
const postWithUserQuery = `
	SELECT p.post_id, p.title, p.content, p.created_at, p.updated_at,
	       u.user_id, u.username, u.email, u.created_at
	FROM posts p
	INNER JOIN users u ON p.user_id = u.user_id
`

// scanPost maps a result row onto a domain.Post.
func scanPost(row interface{ Scan(dest ...any) error }) (*domain.Post, error) {
	var post domain.Post
	if err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

// scanPostWithUser maps a joined post/user row onto a domain.PostWithUser.
func scanPostWithUser(row interface{ Scan(dest ...any) error }) (*domain.PostWithUser, error) {
	var p domain.PostWithUser
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.User.ID,
		&p.User.Username,
		&p.User.Email,
		&p.User.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implements store.PostStore.Create
// UpdatedAt is left NULL until the first update. Returns
// store.ErrForeignKey if userID does not reference an existing user.
func (s *PostgresPostStore) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateNewPost(title, content); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	post := &domain.Post{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO posts (user_id, title, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NULL)
			RETURNING post_id
		`
		if err := tx.QueryRowContext(ctx, query,
			post.UserID, post.Title, post.Content, post.CreatedAt).
			Scan(&post.ID); err != nil {
			return MapError(err)
		}
		return nil
	})
	if err != nil {
		if store.IsForeignKeyError(err) {
			log.Warn("foreign key violation during post creation",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create post",
				slog.String("error", err.Error()),
				slog.Int64("user_id", userID))
		}
		return nil, err
	}

	log.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("user_id", post.UserID))
	return post, nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var post *domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := fmt.Sprintf("SELECT %s FROM posts WHERE post_id = $1", postColumns)
		p, err := scanPost(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrPostNotFound
			}
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("post not found", slog.Int64("post_id", id))
		} else {
			log.Error("failed to get post by ID",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return nil, err
	}

	return post, nil
}

// GetByIDWithUser implements store.PostStore.GetByIDWithUser
// Single-row inner join between posts and users on user_id.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByIDWithUser(ctx context.Context, id int64) (*domain.PostWithUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var post *domain.PostWithUser
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := postWithUserQuery + " WHERE p.post_id = $1"
		p, err := scanPostWithUser(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrPostNotFound
			}
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("post not found", slog.Int64("post_id", id))
		} else {
			log.Error("failed to get post with user",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return nil, err
	}

	return post, nil
}

// GetAll implements store.PostStore.GetAll
func (s *PostgresPostStore) GetAll(ctx context.Context) ([]domain.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts", postColumns)
	return s.listPosts(ctx, query)
}

// GetByUserID implements store.PostStore.GetByUserID
func (s *PostgresPostStore) GetByUserID(ctx context.Context, userID int64) ([]domain.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE user_id = $1", postColumns)
	return s.listPosts(ctx, query, userID)
}

// listPosts runs a post query and materializes the result set.
func (s *PostgresPostStore) listPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var posts []domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		posts, err = collectRows(ctx, tx, scanPost, query, args...)
		return err
	})
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// GetAllWithUsers implements store.PostStore.GetAllWithUsers
// Unfiltered inner join between posts and users.
func (s *PostgresPostStore) GetAllWithUsers(ctx context.Context) ([]domain.PostWithUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var posts []domain.PostWithUser
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		posts, err = collectRows(ctx, tx, scanPostWithUser, postWithUserQuery)
		return err
	})
	if err != nil {
		log.Error("failed to list posts with users", slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// Update implements store.PostStore.Update
// Every call that affects a row refreshes updated_at, even when only
// one of title/content is supplied, and also when neither is.
func (s *PostgresPostStore) Update(ctx context.Context, id int64, update store.PostUpdate) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.Title != nil {
		if err := domain.ValidateTitle(*update.Title); err != nil {
			return false, err
		}
	}
	if update.Content != nil && *update.Content == "" {
		return false, domain.ErrEmptyContent
	}

	var affected bool
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		args := make([]any, 0, 4)
		set := make([]string, 0, 3)
		if update.Title != nil {
			args = append(args, *update.Title)
			set = append(set, fmt.Sprintf("title = $%d", len(args)))
		}
		if update.Content != nil {
			args = append(args, *update.Content)
			set = append(set, fmt.Sprintf("content = $%d", len(args)))
		}
		args = append(args, time.Now().UnixMilli())
		set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))
		args = append(args, id)

		query := fmt.Sprintf("UPDATE posts SET %s WHERE post_id = $%d",
			strings.Join(set, ", "), len(args))
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return MapError(err)
		}

		affected, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return false, err
	}

	if !affected {
		log.Debug("post not found for update", slog.Int64("post_id", id))
	}
	return affected, nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrForeignKey if comments still reference the post;
// the schema declares no cascade, so callers must delete comments
// first.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var affected bool
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM posts WHERE post_id = $1", id)
		if err != nil {
			return MapError(err)
		}
		affected, err = rowsAffected(result)
		return err
	})
	if err != nil {
		if store.IsForeignKeyError(err) {
			log.Warn("post still referenced, delete rejected",
				slog.Int64("post_id", id))
		} else {
			log.Error("failed to delete post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return false, err
	}

	if affected {
		log.Info("post deleted", slog.Int64("post_id", id))
	}
	return affected, nil
}
