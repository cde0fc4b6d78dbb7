package api

import (
	"log/slog"
	"net/http"

	"github.com/tkaz/blog-api/internal/api/shared"
	"github.com/tkaz/blog-api/internal/store"
)

// CreatePostRequest represents the request body for publishing a post.
type CreatePostRequest struct {
	UserID  int64  `json:"userId"  validate:"required,gt=0"`
	Title   string `json:"title"   validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest represents the request body for updating a post.
// Absent fields are left untouched; the update timestamp is refreshed
// either way.
type UpdatePostRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=1,max=100"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postStore store.PostStore, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postStore: postStore,
		logger:    logger.With(slog.String("handler", "post")),
	}
}

// Create handles POST /api/posts requests.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	post, err := h.postStore.Create(r.Context(), req.UserID, req.Title, req.Content)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// List handles GET /api/posts requests. Posts are returned together
// with their authors.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postStore.GetAllWithUsers(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// Get handles GET /api/posts/{id} requests.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.postStore.GetByIDWithUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// ListByUser handles GET /api/users/{id}/posts requests.
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	posts, err := h.postStore.GetByUserID(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// Update handles PUT /api/posts/{id} requests.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	affected, err := h.postStore.Update(r.Context(), id, store.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if !affected {
		shared.RespondWithError(w, r, http.StatusNotFound, "post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/posts/{id} requests.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	affected, err := h.postStore.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if !affected {
		shared.RespondWithError(w, r, http.StatusNotFound, "post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
