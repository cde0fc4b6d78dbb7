package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkaz/blog-api/internal/domain"
	"github.com/tkaz/blog-api/internal/platform/postgres"
	"github.com/tkaz/blog-api/internal/store"
)

func newMockCommentStore(t *testing.T) (*postgres.PostgresCommentStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewPostgresCommentStore(db, nil), mock
}

func commentRows(comments ...domain.Comment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"comment_id", "post_id", "user_id", "content", "created_at"})
	for _, c := range comments {
		rows.AddRow(c.ID, c.PostID, c.UserID, c.Content, c.CreatedAt)
	}
	return rows
}

func TestCommentStore_Create(t *testing.T) {
	t.Run("assigns ID and timestamp", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO comments").
			WithArgs(int64(10), int64(1), "first!", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"comment_id"}).AddRow(int64(100)))
		mock.ExpectCommit()

		comment, err := commentStore.Create(context.Background(), 10, 1, "first!")
		require.NoError(t, err)

		assert.Equal(t, int64(100), comment.ID)
		assert.Equal(t, int64(10), comment.PostID)
		assert.Equal(t, int64(1), comment.UserID)
		assert.Equal(t, "first!", comment.Content)
		assert.NotZero(t, comment.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown post is rejected", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO comments").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_post_id_fkey"})
		mock.ExpectRollback()

		comment, err := commentStore.Create(context.Background(), 99, 1, "first!")
		assert.ErrorIs(t, err, store.ErrForeignKey)
		assert.Nil(t, comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty content never reaches the database", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		_, err := commentStore.Create(context.Background(), 10, 1, "")
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentStore_GetByPostID(t *testing.T) {
	t.Run("orders by comment ID ascending", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		c1 := domain.Comment{ID: 1, PostID: 10, UserID: 1, Content: "a", CreatedAt: 1}
		c2 := domain.Comment{ID: 2, PostID: 10, UserID: 2, Content: "b", CreatedAt: 2}
		c3 := domain.Comment{ID: 3, PostID: 10, UserID: 1, Content: "c", CreatedAt: 3}

		mock.ExpectBegin()
		mock.ExpectQuery("FROM comments WHERE post_id = .+ ORDER BY comment_id").
			WithArgs(int64(10)).
			WillReturnRows(commentRows(c1, c2, c3))
		mock.ExpectCommit()

		comments, err := commentStore.GetByPostID(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, []domain.Comment{c1, c2, c3}, comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no comments yields empty slice", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("FROM comments WHERE post_id = .+ ORDER BY comment_id").
			WithArgs(int64(10)).
			WillReturnRows(commentRows())
		mock.ExpectCommit()

		comments, err := commentStore.GetByPostID(context.Background(), 10)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentStore_GetByIDWithUser(t *testing.T) {
	commentStore, mock := newMockCommentStore(t)

	rows := sqlmock.NewRows([]string{
		"comment_id", "post_id", "content", "created_at",
		"user_id", "username", "email", "user_created_at",
	}).AddRow(int64(100), int64(10), "first!", int64(1700000000000),
		int64(1), "alice", "alice@example.com", int64(1690000000000))

	mock.ExpectBegin()
	mock.ExpectQuery("INNER JOIN users u ON c.user_id = u.user_id").
		WithArgs(int64(100)).
		WillReturnRows(rows)
	mock.ExpectCommit()

	comment, err := commentStore.GetByIDWithUser(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, int64(100), comment.ID)
	assert.Equal(t, int64(10), comment.PostID)
	assert.Equal(t, "first!", comment.Content)
	assert.Equal(t, "alice", comment.User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentStore_GetByIDWithPostAndUser(t *testing.T) {
	t.Run("joins post and author", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		rows := sqlmock.NewRows([]string{
			"comment_id", "content", "created_at",
			"post_id", "post_user_id", "title", "post_content", "post_created_at", "post_updated_at",
			"user_id", "username", "email", "user_created_at",
		}).AddRow(int64(100), "first!", int64(3),
			int64(10), int64(1), "Hello", "first post", int64(2), nil,
			int64(1), "alice", "alice@example.com", int64(1))

		mock.ExpectBegin()
		mock.ExpectQuery("INNER JOIN posts p ON c.post_id = p.post_id").
			WithArgs(int64(100)).
			WillReturnRows(rows)
		mock.ExpectCommit()

		comment, err := commentStore.GetByIDWithPostAndUser(context.Background(), 100)
		require.NoError(t, err)

		assert.Equal(t, "Hello", comment.Post.Title)
		assert.Equal(t, int64(1), comment.Post.UserID)
		assert.Nil(t, comment.Post.UpdatedAt)
		assert.Equal(t, "alice", comment.User.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent maps to ErrCommentNotFound", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INNER JOIN posts p ON c.post_id = p.post_id").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"comment_id"}))
		mock.ExpectRollback()

		comment, err := commentStore.GetByIDWithPostAndUser(context.Background(), 404)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)
		assert.Nil(t, comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentStore_Delete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM comments WHERE comment_id = ").
			WithArgs(int64(100)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := commentStore.Delete(context.Background(), 100)
		require.NoError(t, err)
		assert.True(t, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		commentStore, mock := newMockCommentStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM comments WHERE comment_id = ").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := commentStore.Delete(context.Background(), 404)
		require.NoError(t, err)
		assert.False(t, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
