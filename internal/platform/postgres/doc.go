// Package postgres implements the store interfaces against a
// PostgreSQL database. Each repository method runs in its own scoped
// transaction on the shared connection pool; uniqueness and
// referential integrity are enforced by the schema and surfaced
// through the shared error taxonomy in the store package.
package postgres
