package main

import (
	"database/sql"
	"log/slog"

	"github.com/tkaz/blog-api/internal/api"
	"github.com/tkaz/blog-api/internal/config"
	"github.com/tkaz/blog-api/internal/platform/postgres"
)

// application holds the shared dependencies of the server process.
// Everything is wired once at startup; handlers receive their stores
// through constructor injection.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userHandler    *api.UserHandler
	postHandler    *api.PostHandler
	commentHandler *api.CommentHandler
}

func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	postStore := postgres.NewPostgresPostStore(db, log)
	commentStore := postgres.NewPostgresCommentStore(db, log)

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userHandler:    api.NewUserHandler(userStore, log),
		postHandler:    api.NewPostHandler(postStore, log),
		commentHandler: api.NewCommentHandler(commentStore, log),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}
}
