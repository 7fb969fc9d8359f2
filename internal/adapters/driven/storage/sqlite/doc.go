// Package sqlite provides the SQLite-backed run history store.
// The schema is managed by embedded migrations applied at open time.
package sqlite
