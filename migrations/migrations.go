// Package migrations embeds the SQL migration files applied by goose.
// Both the server startup path and the integration test harness run the
// same migrations, so the schema under test is the schema in production.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
