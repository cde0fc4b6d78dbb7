// Package api contains the HTTP handlers exposing the blog domain.
// Handlers decode and validate request bodies, delegate to the store
// interfaces, and map store errors onto HTTP status codes.
package api
