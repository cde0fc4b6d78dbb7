package api

import (
	"log/slog"
	"net/http"

	"github.com/tkaz/blog-api/internal/api/shared"
	"github.com/tkaz/blog-api/internal/store"
)

// CreateCommentRequest represents the request body for commenting on a
// post. The post ID comes from the URL.
type CreateCommentRequest struct {
	UserID  int64  `json:"userId"  validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentStore store.CommentStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentStore store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		commentStore: commentStore,
		logger:       logger.With(slog.String("handler", "comment")),
	}
}

// Create handles POST /api/posts/{id}/comments requests.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	comment, err := h.commentStore.Create(r.Context(), postID, req.UserID, req.Content)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, comment)
}

// Get handles GET /api/comments/{id} requests. The comment is returned
// together with its post and author.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comment, err := h.commentStore.GetByIDWithPostAndUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// ListByPost handles GET /api/posts/{id}/comments requests. Comments
// carry their authors and are ordered oldest first.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	comments, err := h.commentStore.GetByPostIDWithUsers(r.Context(), postID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// ListByUser handles GET /api/users/{id}/comments requests. Each
// comment carries the post it was written on and its author.
func (h *CommentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	comments, err := h.commentStore.GetByUserIDWithPosts(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/{id} requests.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	affected, err := h.commentStore.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if !affected {
		shared.RespondWithError(w, r, http.StatusNotFound, "comment not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
