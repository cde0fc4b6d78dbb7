// Package testdb provides utilities for integration tests that run
// against a real PostgreSQL database. Tests using this package carry
// the integration build tag and skip themselves when no database URL
// is configured.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/tkaz/blog-api/migrations"
)

// databaseURLEnv names the environment variable integration tests read
// to locate the test database.
const databaseURLEnv = "DATABASE_URL"

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDB opens a connection to the test database and ensures the
// schema is migrated. It skips the calling test when DATABASE_URL is
// not set, so the integration suite is opt-in.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(databaseURLEnv)
	if url == "" {
		t.Skipf("skipping: %s not set", databaseURLEnv)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	migrateOnce.Do(func() {
		goose.SetBaseFS(migrations.FS)
		if migrateErr = goose.SetDialect("postgres"); migrateErr != nil {
			return
		}
		migrateErr = goose.Up(db, ".")
	})
	if migrateErr != nil {
		t.Fatalf("failed to migrate test database: %v", migrateErr)
	}

	return db
}

// ResetTables removes all rows and restarts the identity sequences, so
// each test starts from an empty schema with predictable IDs.
func ResetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec("TRUNCATE comments, posts, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}
