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

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts the shared connection pool, which is
// initialized and owned by the caller. If logger is nil, the default
// logger is used.
func NewPostgresUserStore(db *sql.DB, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = "user_id, username, email, created_at"

// scanUser maps a result row onto a domain.User. It is the single
// place the users column order is interpreted.
func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create implements store.UserStore.Create
// It inserts a new user with a server-assigned ID and creation
// timestamp. Returns store.ErrDuplicate if the username or email is
// already in use; uniqueness is not pre-checked, the constraint
// violation from the database is mapped instead.
func (s *PostgresUserStore) Create(ctx context.Context, username, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateNewUser(username, email); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	user := &domain.User{
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO users (username, email, created_at)
			VALUES ($1, $2, $3)
			RETURNING user_id
		`
		if err := tx.QueryRowContext(ctx, query, user.Username, user.Email, user.CreatedAt).
			Scan(&user.ID); err != nil {
			return MapError(err)
		}
		return nil
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Warn("unique violation during user creation",
				slog.String("username", username),
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create user",
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	log.Info("user created",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return user, nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := fmt.Sprintf("SELECT %s FROM users WHERE user_id = $1", userColumns)
		u, err := scanUser(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrUserNotFound
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("user not found", slog.Int64("user_id", id))
		} else {
			log.Error("failed to get user by ID",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return nil, err
	}

	return user, nil
}

// GetAll implements store.UserStore.GetAll
// Returns an empty slice when the table is empty.
func (s *PostgresUserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var users []domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := fmt.Sprintf("SELECT %s FROM users", userColumns)
		var err error
		users, err = collectRows(ctx, tx, scanUser, query)
		return err
	})
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}

// Update implements store.UserStore.Update
// Only the fields named by the update are overwritten. An empty update
// writes nothing and reports whether the row exists. Returns
// store.ErrDuplicate if the new username or email is already in use.
func (s *PostgresUserStore) Update(ctx context.Context, id int64, update store.UserUpdate) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.Username != nil {
		if err := domain.ValidateUsername(*update.Username); err != nil {
			return false, err
		}
	}
	if update.Email != nil {
		if err := domain.ValidateEmail(*update.Email); err != nil {
			return false, err
		}
	}

	var affected bool
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if update.IsEmpty() {
			return tx.QueryRowContext(ctx,
				"SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)", id).
				Scan(&affected)
		}

		set := make([]string, 0, 2)
		args := make([]any, 0, 3)
		if update.Username != nil {
			args = append(args, *update.Username)
			set = append(set, fmt.Sprintf("username = $%d", len(args)))
		}
		if update.Email != nil {
			args = append(args, *update.Email)
			set = append(set, fmt.Sprintf("email = $%d", len(args)))
		}
		args = append(args, id)

		query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d",
			strings.Join(set, ", "), len(args))
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return MapError(err)
		}

		affected, err = rowsAffected(result)
		return err
	})
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return false, err
	}

	if !affected {
		log.Debug("user not found for update", slog.Int64("user_id", id))
	}
	return affected, nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrForeignKey if posts or comments still reference the
// user; the schema declares no cascade.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var affected bool
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM users WHERE user_id = $1", id)
		if err != nil {
			return MapError(err)
		}
		affected, err = rowsAffected(result)
		return err
	})
	if err != nil {
		if store.IsForeignKeyError(err) {
			log.Warn("user still referenced, delete rejected",
				slog.Int64("user_id", id))
		} else {
			log.Error("failed to delete user",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return false, err
	}

	if affected {
		log.Info("user deleted", slog.Int64("user_id", id))
	}
	return affected, nil
}
