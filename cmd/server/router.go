package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	apimiddleware "github.com/tkaz/blog-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace(app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", app.userHandler.Create)
			r.Get("/", app.userHandler.List)
			r.Get("/{id}", app.userHandler.Get)
			r.Put("/{id}", app.userHandler.Update)
			r.Delete("/{id}", app.userHandler.Delete)
			r.Get("/{id}/posts", app.postHandler.ListByUser)
			r.Get("/{id}/comments", app.commentHandler.ListByUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", app.postHandler.Create)
			r.Get("/", app.postHandler.List)
			r.Get("/{id}", app.postHandler.Get)
			r.Put("/{id}", app.postHandler.Update)
			r.Delete("/{id}", app.postHandler.Delete)
			r.Post("/{id}/comments", app.commentHandler.Create)
			r.Get("/{id}/comments", app.commentHandler.ListByPost)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/{id}", app.commentHandler.Get)
			r.Delete("/{id}", app.commentHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
