package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tkaz/blog-api/internal/config"
	"github.com/tkaz/blog-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	app, err := newApplication(cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	// An explicit migrate command runs and exits without serving.
	if migrateCmd != "" {
		return runMigrations(app.db, log, migrateCmd)
	}

	if err := runMigrations(app.db, log, "up"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return app.serve()
}
