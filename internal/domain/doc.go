// Package domain defines the core entities of the blogging domain
// (users, posts, comments) and the composed read-models produced by
// join queries. Entities are plain value types: identity is the
// surrogate primary key, timestamps are milliseconds since epoch as
// stored in the database.
package domain
