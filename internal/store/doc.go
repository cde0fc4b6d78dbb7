// Package store defines the persistence interfaces for the blogging
// domain, the shared error taxonomy, and the transaction helper that
// gives every repository method its atomicity guarantee. Concrete
// implementations live in internal/platform/postgres.
package store
