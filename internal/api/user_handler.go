package api

import (
	"log/slog"
	"net/http"

	"github.com/tkaz/blog-api/internal/api/shared"
	"github.com/tkaz/blog-api/internal/store"
)

// CreateUserRequest represents the request body for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
}

// UpdateUserRequest represents the request body for updating a user.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email,max=100"`
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		logger:    logger.With(slog.String("handler", "user")),
	}
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	user, err := h.userStore.Create(r.Context(), req.Username, req.Email)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// List handles GET /api/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.GetAll(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /api/users/{id} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Update handles PUT /api/users/{id} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	affected, err := h.userStore.Update(r.Context(), id, store.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if !affected {
		shared.RespondWithError(w, r, http.StatusNotFound, "user not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/users/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	affected, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	if !affected {
		shared.RespondWithError(w, r, http.StatusNotFound, "user not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
