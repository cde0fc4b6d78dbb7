package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkaz/blog-api/internal/api"
	"github.com/tkaz/blog-api/internal/domain"
	"github.com/tkaz/blog-api/internal/store"
)

func newUserRouter(userStore store.UserStore) http.Handler {
	h := api.NewUserHandler(userStore, nil)
	r := chi.NewRouter()
	r.Post("/api/users", h.Create)
	r.Get("/api/users", h.List)
	r.Get("/api/users/{id}", h.Get)
	r.Put("/api/users/{id}", h.Update)
	r.Delete("/api/users/{id}", h.Delete)
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("returns 201 with the created user", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			createFn: func(_ context.Context, username, email string) (*domain.User, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "alice@example.com", email)
				return &domain.User{ID: 1, Username: username, Email: email, CreatedAt: 1700000000000}, nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/users",
			`{"username":"alice","email":"alice@example.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			createFn: func(context.Context, string, string) (*domain.User, error) {
				return nil, store.ErrDuplicate
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/api/users",
			`{"username":"alice","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid email maps to 400 without reaching the store", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{})

		rec := doRequest(t, router, http.MethodPost, "/api/users",
			`{"username":"alice","email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{})

		rec := doRequest(t, router, http.MethodPost, "/api/users", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Get(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
				assert.Equal(t, int64(7), id)
				return &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/users/7", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	})

	t.Run("absent maps to 404", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			getByIDFn: func(context.Context, int64) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		})

		rec := doRequest(t, router, http.MethodGet, "/api/users/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric ID maps to 400", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{})

		rec := doRequest(t, router, http.MethodGet, "/api/users/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	router := newUserRouter(&stubUserStore{
		getAllFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{}, nil
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String(), "empty list serializes as [], not null")
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("passes only the supplied fields to the store", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			updateFn: func(_ context.Context, id int64, update store.UserUpdate) (bool, error) {
				assert.Equal(t, int64(1), id)
				require.NotNil(t, update.Username)
				assert.Equal(t, "alice2", *update.Username)
				assert.Nil(t, update.Email)
				return true, nil
			},
		})

		rec := doRequest(t, router, http.MethodPut, "/api/users/1", `{"username":"alice2"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("no row affected maps to 404", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			updateFn: func(context.Context, int64, store.UserUpdate) (bool, error) {
				return false, nil
			},
		})

		rec := doRequest(t, router, http.MethodPut, "/api/users/42", `{"username":"ghost"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			updateFn: func(context.Context, int64, store.UserUpdate) (bool, error) {
				return false, store.ErrDuplicate
			},
		})

		rec := doRequest(t, router, http.MethodPut, "/api/users/1", `{"email":"taken@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("returns 204", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			deleteFn: func(context.Context, int64) (bool, error) { return true, nil },
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/users/1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("still referenced maps to 409", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			deleteFn: func(context.Context, int64) (bool, error) {
				return false, store.ErrForeignKey
			},
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/users/1", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("absent maps to 404", func(t *testing.T) {
		router := newUserRouter(&stubUserStore{
			deleteFn: func(context.Context, int64) (bool, error) { return false, nil },
		})

		rec := doRequest(t, router, http.MethodDelete, "/api/users/42", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
