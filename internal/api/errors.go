package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tkaz/blog-api/internal/api/shared"
	"github.com/tkaz/blog-api/internal/domain"
	"github.com/tkaz/blog-api/internal/platform/logger"
	"github.com/tkaz/blog-api/internal/store"
)

// respondStoreError maps store and domain errors onto HTTP responses.
//
//	not found        -> 404
//	duplicate        -> 409
//	foreign key      -> 409
//	validation       -> 400
//	anything else    -> 500, details stay in the logs
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case store.IsNotFoundError(err):
		shared.RespondWithError(w, r, http.StatusNotFound, err.Error())
	case store.IsDuplicateError(err):
		shared.RespondWithError(w, r, http.StatusConflict, "resource already exists")
	case store.IsForeignKeyError(err):
		shared.RespondWithError(w, r, http.StatusConflict, "operation violates a reference to another resource")
	case errors.Is(err, domain.ErrValidation):
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
	default:
		log := logger.FromContextOrDefault(r.Context(), slog.Default())
		log.Error("unhandled store error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// pathID extracts and parses the {id} URL parameter. A second return
// value of false means a 400 response has already been written.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid ID: must be a positive integer")
		return 0, false
	}
	return id, true
}
